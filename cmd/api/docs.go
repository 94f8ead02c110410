package main

// @title RecycleIT API
// @version 1.0
// @description Finds e-waste recycling facilities near a location using OpenStreetMap data.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:5000
// @BasePath /
