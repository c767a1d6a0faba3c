package entity

// Installer roles. An installer account is keyed by (ID, Kind); the same
// person id may exist independently under both roles.
const (
	InstallerKindService = "service_person"
	InstallerKindSurvey  = "survey_person"
)

// InstallerRef is a tagged reference to an installer under one of the two
// roles. Resolved by explicit lookup-by-kind, never by implicit dispatch.
type InstallerRef struct {
	Kind string
	ID   string
}
