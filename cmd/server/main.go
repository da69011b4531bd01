package main

import (
	"github.com/sudostake/onboard/internal/server"
)

func main() {
	s := server.New()
	s.RegisterRoutes()
	s.Start()
}
