package main

import (
	"github.com/Giulio2002/faster_sha256/internal/lol"
)

var (
	log, chk, errorf = lol.Main.Log, lol.Main.Check, lol.Main.Errorf
)
