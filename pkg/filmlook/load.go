package filmlook

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/tiff"
)

// A Job is what the CLI assembles before rendering: a preset plus an
// ordered list of frame files. Frames sort by filename, the usual
// convention for numbered frame dumps.
type Job struct {
	Config     Config
	FramePaths []string
}

func NewJob() Job {
	return Job{Config: NewConfig()}
}

// LoadFilesAndDirs walks the given paths: directories recurse, .yaml
// files become the preset, anything that looks like an image joins the
// frame list.
func (j *Job)LoadFilesAndDirs(args ...string) error {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			contents, err := os.ReadDir(arg)
			if err != nil {
				return fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				if err := j.LoadFilesAndDirs(filepath.Join(arg, content.Name())); err != nil {
					return fmt.Errorf("load %s: %v", arg, err)
				}
			}

		default:
			if err := j.loadFile(arg); err != nil {
				return fmt.Errorf("loadfile %s: %v", arg, err)
			}
		}
	}

	sort.Strings(j.FramePaths)
	return nil
}

func (j *Job)loadFile(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {

	case ".yaml":
		cfg, err := LoadConfig(filename)
		if err != nil {
			return fmt.Errorf("Loading %s as preset YAML failed: %v", filename, err)
		}
		j.Config = cfg
		log.Printf("Loaded preset from %s\n", filename)

	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		j.FramePaths = append(j.FramePaths, filename)
	}

	return nil
}

// LoadImage decodes one frame file by extension.
func LoadImage(filename string) (image.Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r img '%s': %v", filename, err)
	}
	defer reader.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return png.Decode(reader)
	case ".jpg", ".jpeg":
		return jpeg.Decode(reader)
	case ".tif", ".tiff":
		return tiff.Decode(reader)
	}
	return nil, fmt.Errorf("'%s': no decoder for this extension", filename)
}
