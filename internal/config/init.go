package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# Site configuration
site_name: "Best Coins Ever"
base_url: "https://bestcoinsever.com"
language: "en"
default_description: "Coin values, errors, and guides."

posts_per_page: 12
home_posts_count: 24
related_count: 5

# Optional: rotate the home listing deterministically per day.
# home_rotation: daily

nav:
  - label: "Home"
    url: "/"
  - label: "About"
    url: "/about/"

# paths:
#   content: content
#   templates: templates
#   includes: includes
#   static: static
#   output: dist
`

// Init creates a new configuration file with example content.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}
	return os.WriteFile(path, []byte(exampleConfig), 0o644)
}
