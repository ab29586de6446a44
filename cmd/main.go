package main

import "github.com/adanyl0v/go-task-manager/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustListenAndServeHTTP()
}
