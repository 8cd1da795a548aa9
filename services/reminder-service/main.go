package main

import "github.com/MGmadhavan/medication-reminder-app/services/reminder-service/internal/app"

func main() {
	app.Execute()
}
