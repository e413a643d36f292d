package models

// ParticipantID is the opaque identifier of a registered player. The engine never
// interprets it beyond ordering and equality.
type ParticipantID string
