// meta/meta.go
package meta

// CONSECUTIVE_FORFEITS is the number of forfeited turns in a row that ends a game.
const CONSECUTIVE_FORFEITS = 2

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 20

// OPENING_PLIES defines the random opening moves played before agents take over.
const OPENING_PLIES = 4

// MAX_EXPERIMENT_DEPTH defines the deepest search used in experiments.
const MAX_EXPERIMENT_DEPTH = 4

// MIN_BOARD_SIZE is the smallest board with a centre opening.
const MIN_BOARD_SIZE = 2
