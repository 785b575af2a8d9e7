package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"xptracker-backend/lib/configutil/configdb"
	xparchivedb "xptracker-backend/lib/xparchive/db"
)

const characterList = `Bound Death Slicer
Knight of the Mist
Sorcerer Supreme
`

const devConfig = `{
	character_file: "dev/.state/characters.txt",
	data_dir: "dev/.state/data",
	scrape: {
		timeout_seconds: 15,
		instrument_dir: "dev/.state/http",
	},
	archive: {
		file: "dev/.state/archive.db",
	},
}
`

const devEnv = `# paste a real webhook url here to see the reports land in a channel
DISCORD_WEBHOOK_URL=
`

func writeIfMissing(path, content string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0666)
}

func create(recreate bool) error {
	_, err := os.Stat("go.mod")
	if os.IsNotExist(err) {
		return fmt.Errorf("the dev environment must be created in the repository root (the same directory as the 'go.mod' file)")
	}

	if recreate {
		err = os.RemoveAll("dev/.state")
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	for _, dir := range []string{"dev/.state", "dev/.state/data", "dev/.state/http"} {
		err = os.MkdirAll(dir, 0777)
		if err != nil && !os.IsExist(err) {
			return err
		}
	}

	err = writeIfMissing("dev/.state/characters.txt", characterList)
	if err != nil {
		return err
	}
	err = writeIfMissing("config.local.json5", devConfig)
	if err != nil {
		return err
	}
	err = writeIfMissing(".env", devEnv)
	if err != nil {
		return err
	}

	db, err := configdb.Struct{File: "dev/.state/archive.db"}.OpenDB(xparchivedb.Schema)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("dev environment ready:")
	fmt.Println("  characters:  dev/.state/characters.txt")
	fmt.Println("  config:      config.local.json5")
	fmt.Println("  env:         .env")
	fmt.Println("  archive db:  dev/.state/archive.db")
	fmt.Println()
	fmt.Println("run 'go run ./cmd/xptracker run' to do a full scrape.")

	return nil
}

func main() {
	recreate := flag.Bool("recreate", false, "recreate the dev environment from scratch")
	flag.Parse()

	err := create(*recreate)
	if err != nil {
		slog.Error("failed to create dev environment", "err", err.Error())
		os.Exit(1)
	}
}
