package bridge

import (
	"github.com/Giulio2002/faster_sha256/internal/lol"
)

var log = lol.Main.Log
