// meta/meta.go
package meta

// MAX_TURNS bounds the number of plays in one game, placements excluded.
const MAX_TURNS = 300

// NUM_GAMES defines the default number of games per match.
const NUM_GAMES = 10

// AGENT_PORT defines the default port of the agent server.
const AGENT_PORT = "8080"

// RESULTS_DIR defines where match records are written.
const RESULTS_DIR = "results"
