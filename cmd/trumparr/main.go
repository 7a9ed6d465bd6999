// Command trumparr checks a Radarr/Sonarr library against private trackers
// and reports releases that are missing or trumpable.
package main

func main() {
	Execute()
}
