package bmpedit

import (
	"io"
	"path/filepath"
)

var defaultFormat = FormatOption{Format: BMP}

// Filter is a single step applied by Options.Convert.
type Filter func(*Image) error

// Options represents options that can be used to configure a image operation.
type Options struct {
	Filters []Filter
	Format  FormatOption
}

// NewOptions creates a new option with default setting: no filters, BMP output.
func NewOptions() Options {
	return Options{Format: defaultFormat}
}

// AddFilter appends filters to run, in order, before encoding.
func (opts *Options) AddFilter(filters ...Filter) *Options {
	opts.Filters = append(opts.Filters, filters...)
	return opts
}

// SetFormat sets the value for the Format field.
func (opts *Options) SetFormat(f string, options ...EncodeOption) (err error) {
	opts.Format, err = setFormat(f, options...)
	return
}

// Convert runs the filters on a copy of base and writes the result to w.
// base itself is never modified.
func (opts *Options) Convert(w io.Writer, base *Image) error {
	img := base.Clone()
	for _, f := range opts.Filters {
		if err := f(img); err != nil {
			return err
		}
	}
	return opts.Format.Encode(w, img)
}

// ConvertExt convert filename's ext according image format.
func (opts *Options) ConvertExt(filename string) string {
	return filename[0:len(filename)-len(filepath.Ext(filename))] + "." + formatExts[opts.Format.Format]
}
