package main

import "github.com/killallgit/xianplay-api/cmd"

// @title           XianPlay API
// @version         1.0.0
// @description     Short drama catalog aggregation, playback URL selection, image relay and per-client library.
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/xianplay-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
