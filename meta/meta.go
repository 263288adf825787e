// meta/meta.go
package meta

// DEFAULT_ROWS, DEFAULT_COLS and DEFAULT_K give the classic 3x3 tic-tac-toe board.
const DEFAULT_ROWS = 3
const DEFAULT_COLS = 3
const DEFAULT_K = 3

// DEFAULT_ALGORITHM is the search used when none is configured.
const DEFAULT_ALGORITHM = "alphabeta"

// GO_ROUTINES defines the number of goroutines searching first moves.
const GO_ROUTINES = 1

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10

// EXPERIMENTS_DIR is where experiment records are written.
const EXPERIMENTS_DIR = "experiments"
