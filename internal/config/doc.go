// Package config loads Hawker's settings.
//
// Configuration lives in ~/.config/hawker/config.toml:
//
//	api_url = "marketplace.example.edu:8000"
//	page_size = 12
//	token_path = "~/.config/hawker/token"
//
// A missing file is not an error; every field has a default. After the file
// is parsed, HAWKER_API_URL, HAWKER_PAGE_SIZE, HAWKER_TOKEN_PATH, and
// HAWKER_TOKEN override individual fields from the environment, so a token
// never has to be written to the config file itself.
package config
