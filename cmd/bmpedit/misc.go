package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sunshineplan/bmpedit"
	"github.com/sunshineplan/progressbar"
	"golang.org/x/sync/errgroup"
)

var supported = regexp.MustCompile(`(?i)\.(jpe?g|png|gif|tiff?|bmp|webp)$`)

var scanInterval = time.Second

func loadImages(root string) (imgs []string) {
	var mu sync.Mutex
	var message string
	var width int
	done := make(chan struct{})
	stopped := make(chan struct{})
	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()
	go func() {
		defer close(stopped)
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				mu.Lock()
				m := message
				mu.Unlock()
				fmt.Fprintf(os.Stdout, "\r%s\r%s", strings.Repeat(" ", width), m)
				width = len(m)
			}
		}
	}()
	var dir string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && supported.MatchString(d.Name()) {
			imgs = append(imgs, path)
		}
		if d.IsDir() {
			dir = path
		}
		mu.Lock()
		message = fmt.Sprintf("Found images: %d, Scanning directory %s", len(imgs), dir)
		mu.Unlock()
		return nil
	})
	close(done)
	// width is owned by the ticker goroutine until it returns.
	<-stopped
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", width))
	return
}

var errSkip = errors.New("skip")

func convert(task *bmpedit.Options, image, output string, force bool) (err error) {
	if _, err = os.Stat(output); err == nil {
		if !force {
			return errSkip
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to get FileInfo of %s: %v", output, err)
		return
	}
	path := filepath.Dir(output)
	if err = os.MkdirAll(path, 0755); err != nil {
		log.Printf("Failed to create directory %s: %v", path, err)
		return
	}
	img, err := bmpedit.OpenAny(image)
	if err != nil {
		log.Printf("Failed to open image %s: %v", image, err)
		return
	}
	f, err := os.CreateTemp(path, "*.tmp")
	if err != nil {
		log.Printf("Failed to create temporary file in %s: %v", path, err)
		return
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()
	if err = task.Convert(f, img); err != nil {
		f.Close()
		log.Printf("Failed to convert image %s: %v", image, err)
		return
	}
	if err = f.Close(); err != nil {
		log.Printf("Failed to close %s: %v", f.Name(), err)
		return
	}
	if err = os.Rename(f.Name(), output); err != nil {
		log.Printf("Failed to move %s to %s: %v", f.Name(), output, err)
	}
	return
}

// convertAll converts images found under src into dst using at most worker
// goroutines and returns the number of failures. Skipped images are not failures.
func convertAll(task *bmpedit.Options, src, dst string, images []string, worker int, force bool) int64 {
	total := len(images)
	if total == 0 {
		return 0
	}
	pb := progressbar.New(total)
	pb.Start()
	var done, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(max(worker, 1))
	for _, image := range images {
		g.Go(func() error {
			defer pb.Add(1)
			defer done.Add(1)

			rel, err := filepath.Rel(src, image)
			if err != nil {
				log.Println(image, err)
				failed.Add(1)
				return nil
			}
			switch err := convert(task, image, task.ConvertExt(filepath.Join(dst, rel)), force); {
			case err == nil:
				if *debug {
					log.Printf("[Debug]Converted %s (%d/%d)", image, done.Load()+1, total)
				}
			case errors.Is(err, errSkip):
				log.Println("Skip", image)
			default:
				failed.Add(1)
			}
			return nil
		})
	}
	g.Wait()
	pb.Wait()
	return failed.Load()
}
