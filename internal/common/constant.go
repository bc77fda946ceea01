package common

// UnknownEmail is recorded when the caller's user row cannot be resolved.
const UnknownEmail = "unknown"

// TimestampLayout is the display format of every stored timestamp.
const TimestampLayout = "2006/01/02 15:04"

// StatusSafe is the only status a safety check can report.
const StatusSafe = "safe"

// SOSMessage is attached to every SOS report.
const SOSMessage = "Emergency SOS issued"
