package config

import (
	"github.com/Giulio2002/faster_sha256/internal/lol"
)

var (
	chk, errorf = lol.Main.Check, lol.Main.Errorf
)
