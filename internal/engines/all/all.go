// Package all registers every engine: import it for its side effects.
package all

import (
	_ "github.com/janpfeifer/boardbots/internal/engines/gomoku"
	_ "github.com/janpfeifer/boardbots/internal/engines/hex"
	_ "github.com/janpfeifer/boardbots/internal/engines/tictactoe"
)
