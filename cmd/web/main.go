// @title           JobPortal API
// @version         1.0
// @description     REST API for the student job board: listings, applications and saved jobs.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "jobportal_backend/internal/app"

func main() {
	app.Run()
}
