package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/sunshineplan/bmpedit"
)

func parseEdgeMode(s string) (bmpedit.EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truncate":
		return bmpedit.EdgeTruncate, nil
	case "clamp":
		return bmpedit.EdgeClamp, nil
	}
	return 0, fmt.Errorf("unknown edge mode: %q", s)
}

// parseFilters parses a comma separated list such as "gray,sharpen=8,crop=0:0:10:10".
func parseFilters(s string, mode bmpedit.EdgeMode) (filters []bmpedit.Filter, err error) {
	for _, step := range strings.Split(s, ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		name, arg, _ := strings.Cut(step, "=")
		f, err := parseFilter(strings.ToLower(strings.TrimSpace(name)), strings.TrimSpace(arg), mode)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", step, err)
		}
		filters = append(filters, f)
	}
	return
}

func parseFilter(name, arg string, mode bmpedit.EdgeMode) (bmpedit.Filter, error) {
	edge := bmpedit.WithEdgeMode(mode)
	switch name {
	case "negative", "n":
		return func(img *bmpedit.Image) error { img.Negative(); return nil }, nil
	case "gray", "grey", "g":
		return func(img *bmpedit.Image) error { img.Grayscale(); return nil }, nil
	case "blur", "gauss", "gs":
		return func(img *bmpedit.Image) error { img.GaussianBlur(edge); return nil }, nil
	case "sobel", "s":
		return func(img *bmpedit.Image) error { img.SobelEdges(edge); return nil }, nil
	case "sharpen", "clarity", "cl":
		v, err := floats(arg, bmpedit.DefaultSharpenStrength)
		if err != nil {
			return nil, err
		}
		return func(img *bmpedit.Image) error { img.Sharpen(v[0], edge); return nil }, nil
	case "median", "m":
		v, err := ints(arg, 1, 1)
		if err != nil {
			return nil, err
		}
		return func(img *bmpedit.Image) error { img.Median(v[0], edge); return nil }, nil
	case "vignette", "v":
		v, err := floats(arg, bmpedit.DefaultVignetteRadius, bmpedit.DefaultVignettePower)
		if err != nil {
			return nil, err
		}
		return func(img *bmpedit.Image) error { img.Vignette(v[0], v[1]); return nil }, nil
	case "crop", "frame", "f":
		v, err := ints(arg, 4, 4)
		if err != nil {
			return nil, err
		}
		return func(img *bmpedit.Image) error { return img.Crop(v[0], v[1], v[2], v[3]) }, nil
	case "resize", "rs":
		v, err := ints(arg, 2, 2)
		if err != nil {
			return nil, err
		}
		return func(img *bmpedit.Image) error { return img.Resize(v[0], v[1]) }, nil
	case "resample":
		v, err := ints(arg, 2, 2)
		if err != nil {
			return nil, err
		}
		return func(img *bmpedit.Image) error {
			return img.Resample(&bmpedit.ResizeOption{Width: v[0], Height: v[1]})
		}, nil
	case "thumbnail", "thumb":
		v, err := ints(arg, 2, 2)
		if err != nil {
			return nil, err
		}
		return func(img *bmpedit.Image) error { return img.Thumbnail(v[0], v[1]) }, nil
	case "replace", "rc":
		from, to, ok := strings.Cut(arg, "/")
		if !ok {
			return nil, fmt.Errorf("want from/to colours, got %q", arg)
		}
		src, err := parsePixel(from)
		if err != nil {
			return nil, err
		}
		dst, err := parsePixel(to)
		if err != nil {
			return nil, err
		}
		return func(img *bmpedit.Image) error {
			if n := img.ReplaceColor(src, dst); *debug {
				log.Printf("[Debug]Replaced %d pixels", n)
			}
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unknown filter: %q", name)
}

// ints parses lo to hi colon separated integers. A single optional value
// left empty yields 0, which the filters treat as their default.
func ints(arg string, lo, hi int) ([]int, error) {
	if arg == "" {
		if lo == 1 && hi == 1 {
			return []int{0}, nil
		}
		return nil, fmt.Errorf("missing argument, want %d values", lo)
	}
	fields := strings.Split(arg, ":")
	if len(fields) < lo || len(fields) > hi {
		return nil, fmt.Errorf("want %d values, got %q", hi, arg)
	}
	v := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		v[i] = n
	}
	return v, nil
}

// floats parses colon separated numbers, filling missing trailing values from def.
func floats(arg string, def ...float64) ([]float64, error) {
	v := append([]float64(nil), def...)
	if arg == "" {
		return v, nil
	}
	fields := strings.Split(arg, ":")
	if len(fields) > len(def) {
		return nil, fmt.Errorf("want at most %d values, got %q", len(def), arg)
	}
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

// parsePixel parses r:g:b or r:g:b:a.
func parsePixel(s string) (p bmpedit.Pixel, err error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 && len(fields) != 4 {
		return p, fmt.Errorf("want r:g:b or r:g:b:a, got %q", s)
	}
	var c [4]uint8
	for i, field := range fields {
		n, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
		if err != nil {
			return p, err
		}
		c[i] = uint8(n)
	}
	if len(fields) == 4 {
		return bmpedit.RGBA(c[0], c[1], c[2], c[3]), nil
	}
	return bmpedit.RGB(c[0], c[1], c[2]), nil
}
