package constants

// NSQ topics
const (
	TopicScoreUpdated     = "drivescore.score.updated"
	TopicClassifierStatus = "drivescore.classifier.status"
)
