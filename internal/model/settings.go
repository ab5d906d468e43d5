package model

// Settings is the application-settings document stored in the user
// profile, outside the listings storage directory. A nil StoragePath
// means the first-run setup has not completed yet.
type Settings struct {
	Fullscreen  bool    `json:"fullscreen"`
	StoragePath *string `json:"storage_path"`
}

// StorageDirName is the folder the first-run setup creates (or adopts)
// under the chosen base path. Both stores keep their JSON files in it.
const StorageDirName = "ebaylistingsconfig"

// Backing file names within the storage directory.
const (
	CategoriesFile = "categories.json"
	ItemsFile      = "items.json"
)
