package cmd

type Config struct {
	HTTPPort               string
	CouchDBURL             string
	CouchDBUser            string
	CouchDBPassword        string
	RequestTimeoutSeconds  int
	ListEmptyOnUnavailable bool
	ReconcileCron          string
}
