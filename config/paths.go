package config

import (
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
)

const (
	DBDirname = "db"
)

// ExpandHomePath resolves a leading ~ against the user's home directory.
func ExpandHomePath(p string) string {
	res, err := homedir.Expand(p)
	if err != nil {
		panic(err)
	}
	return res
}

func ExpandDBPath(homePath string) string {
	return path.Join(homePath, DBDirname)
}

func ExpandConfigPath(homePath string) string {
	return path.Join(homePath, ConfigFilename)
}

func InitDBDir(homePath string) error {
	return os.MkdirAll(ExpandDBPath(homePath), 0700)
}
