package cmd

import (
	"errors"

	"github.com/spf13/pflag"
)

// AddFlags registers the table shaping flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Box, "box", "", "Border style (ascii, double, hidden, normal, rounded, thick)")
	fs.BoolP("expand", "e", false, "Stretch the table to the full width, --expand=false turns a configured expand off")
	fs.Bool("border", true, "Draw borders, --border=false turns them off")
	fs.Bool("no-border", false, "Same as --border=false")
	fs.StringSliceVar(&o.Star, "star", nil, "Give a column a share of the spare width, e.g. Notes=2")
	fs.StringSliceVar(&o.Fixed, "fixed", nil, "Give a column a fixed content width, e.g. 1=10")
	fs.StringSliceVar(&o.NoWrap, "nowrap", nil, "Truncate instead of wrapping these columns")
	fs.StringSliceVar(&o.Align, "align", nil, "Align a column, e.g. Qty=right")
	fs.BoolVar(&o.NoHeader, "no-header", false, "Treat the first record as data")
	fs.BoolVar(&o.Footer, "footer", false, "Use the last record as the footer")
}

// ResolveFlags sets Expand and Border from the flags the user passed.
// Flags left alone keep the configured values.
func (o *Options) ResolveFlags(fs *pflag.FlagSet) error {
	o.Expand, o.Border = nil, nil
	if fs.Changed("expand") {
		v, err := fs.GetBool("expand")
		if err != nil {
			return err
		}
		o.Expand = &v
	}
	if fs.Changed("border") {
		v, err := fs.GetBool("border")
		if err != nil {
			return err
		}
		o.Border = &v
	}
	if fs.Changed("no-border") {
		off, err := fs.GetBool("no-border")
		if err != nil {
			return err
		}
		if o.Border != nil && *o.Border == off {
			return errors.New("--border and --no-border disagree")
		}
		v := !off
		o.Border = &v
	}
	return nil
}
