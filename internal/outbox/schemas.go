package outbox

const participantSignedUpSchema = `{
  "type": "object",
  "title": "ParticipantSignedUp",
  "properties": {
    "event_id": {"type": "string"},
    "activity_name": {"type": "string"},
    "participant": {"type": "string"},
    "occurred_at": {"type": "string", "format": "date-time"}
  },
  "required": ["event_id", "activity_name", "participant", "occurred_at"],
  "additionalProperties": false
}`

const participantRemovedSchema = `{
  "type": "object",
  "title": "ParticipantRemoved",
  "properties": {
    "event_id": {"type": "string"},
    "activity_name": {"type": "string"},
    "participant": {"type": "string"},
    "occurred_at": {"type": "string", "format": "date-time"}
  },
  "required": ["event_id", "activity_name", "participant", "occurred_at"],
  "additionalProperties": false
}`
