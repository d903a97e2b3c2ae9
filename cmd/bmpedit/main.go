package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sunshineplan/bmpedit"
	"github.com/vharitonsky/iniflags"
)

var (
	src     = flag.String("src", "", "")
	dst     = flag.String("dst", "output", "")
	force   = flag.Bool("force", false, "")
	format  = flag.String("format", "bmp", "")
	quality = flag.Int("quality", 75, "")
	filters = flag.String("filters", "", "")
	edge    = flag.String("edge", "truncate", "")
	worker  = flag.Int("worker", 5, "")
	debug   = flag.Bool("debug", false, "")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	fmt.Println(`
  --src
		source file or directory
  --dst
		destination directory (default: output)
  --force
		force overwrite (default: false)
  --format
		output format (bmp, jpg, jpeg, png, gif, tif and tiff are supported, default: bmp)
  --quality
		set jpeg quality (range 1-100, default: 75)
  --filters
		comma separated filters applied in order:
		  negative, gray, blur, sobel,
		  sharpen[=strength], median[=radius], vignette[=radius:power],
		  crop=x:y:w:h, resize=w:h, resample=w:h, thumbnail=w:h,
		  replace=r:g:b[:a]/r:g:b[:a]
		crop coordinates start at the bottom-left corner
  --edge
		border mode of blur, sharpen, sobel and median (truncate, clamp, default: truncate)
  --worker
		number of images converted at the same time in directory mode (default: 5)
  --debug
		print every converted image (default: false)`)
}

func main() {
	var code int
	defer func() { os.Exit(code) }()

	self, err := os.Executable()
	if err != nil {
		log.Println("Failed to get self path:", err)
		code = 1
		return
	}

	flag.Usage = usage
	iniflags.SetConfigFile(filepath.Join(filepath.Dir(self), "config.ini"))
	iniflags.SetAllowMissingConfigFile(true)
	iniflags.Parse()

	f, err := os.OpenFile(
		filepath.Join(filepath.Dir(self), fmt.Sprintf("bmpedit%s.log", time.Now().Format("20060102150405"))),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Println("Failed to open log file:", err)
		code = 1
		return
	}
	defer f.Close()

	log.SetOutput(io.MultiWriter(f, os.Stdout))

	task := bmpedit.NewOptions()
	if err := task.SetFormat(*format, bmpedit.JPEGQuality(*quality)); err != nil {
		log.Print(err)
		code = 1
		return
	}

	edgeMode, err := parseEdgeMode(*edge)
	if err != nil {
		log.Print(err)
		code = 1
		return
	}
	steps, err := parseFilters(*filters, edgeMode)
	if err != nil {
		log.Print(err)
		code = 1
		return
	}
	task.AddFilter(steps...)

	srcInfo, err := os.Stat(*src)
	if err != nil {
		log.Print(err)
		code = 1
		return
	}

	dstInfo, err := os.Stat(*dst)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.MkdirAll(*dst, 0755); err != nil {
				log.Print(err)
				code = 1
				return
			}
			dstInfo, _ = os.Stat(*dst)
		} else {
			log.Print(err)
			code = 1
			return
		}
	}
	if !dstInfo.Mode().IsDir() {
		log.Print("Destination is not a directory.")
		code = 1
		return
	}

	switch mode := srcInfo.Mode(); {
	case mode.IsDir():
		images := loadImages(*src)
		total := len(images)
		log.Println("Total images:", total)

		start := time.Now()
		failed := convertAll(&task, *src, *dst, images, *worker, *force)
		log.Printf("Job done! Failed: %d, Elapsed time: %v", failed, time.Since(start))
		if failed > 0 {
			code = 1
		}

	case mode.IsRegular():
		output := task.ConvertExt(filepath.Join(*dst, filepath.Base(*src)))
		if err := convert(&task, *src, output, *force); err != nil {
			if errors.Is(err, errSkip) {
				log.Print("Destination already exist.")
			}
			code = 1
			return
		}

	default:
		log.Print("Unknown source.")
		code = 1
		return
	}
	log.Print("Done.")
}
