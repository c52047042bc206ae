package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName  = "koyomi"
	configFile  = "config.json"
	tokenFile   = "token.json"
	credsFile   = "credentials.json"
	historyFile = "history.json"
)

func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		legacy := filepath.Join(home, ".config", appDirName)
		if _, err := os.Stat(legacy); err == nil {
			return legacy, nil
		}
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, appDirName), nil
}

func ConfigPath() (string, error) {
	return inConfigDir(configFile)
}

func TokenPath() (string, error) {
	return inConfigDir(tokenFile)
}

func CredentialsPath() (string, error) {
	return inConfigDir(credsFile)
}

func HistoryPath() (string, error) {
	return inConfigDir(historyFile)
}

func inConfigDir(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
