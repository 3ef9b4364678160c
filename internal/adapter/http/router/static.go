package router

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// AssetsPrefix is the URL prefix of the client bundle's asset directory
const AssetsPrefix = "/assets"

// mountStatic serves dir/index.html at / and dir/assets under /assets.
// Both must exist.
func mountStatic(router *gin.Engine, dir string) error {
	index := filepath.Join(dir, "index.html")
	if info, err := os.Stat(index); err != nil {
		return fmt.Errorf("web client index: %w", err)
	} else if info.IsDir() {
		return fmt.Errorf("web client index %s is a directory", index)
	}

	assets := filepath.Join(dir, "assets")
	if info, err := os.Stat(assets); err != nil {
		return fmt.Errorf("web client assets: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("web client assets %s is not a directory", assets)
	}

	router.StaticFile("/", index)
	router.Static(AssetsPrefix, assets)
	return nil
}
