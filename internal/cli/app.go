package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavshift"
	"github.com/ik5/wavshift/audio"
	"github.com/ik5/wavshift/internal/prompt"
	"github.com/ik5/wavshift/shift"
	"github.com/sirupsen/logrus"
)

// ErrMissingValue is returned when prompting is disabled and a required
// value was not given.
var ErrMissingValue = errors.New("missing value")

// Options are the values collected from flags, environment and config.
type Options struct {
	Input     string
	Output    string
	Amount    int
	AmountSet bool
	NoInput   bool
}

// App runs the shift flow. Zero fields are filled with defaults by the
// root command before the first run.
type App struct {
	Registry *audio.Registry
	Asker    prompt.Asker
	Out      io.Writer
	Log      *logrus.Logger
}

// Run loads the input, reports its bit depth, shifts it and saves the
// result. Unshiftable files end the run without error and without output.
func (a *App) Run(opts Options) error {
	inPath, err := a.resolve(opts.Input, opts.Input != "", opts.NoInput, "--input", prompt.Question{
		Prompt:   "Enter the path of the audio file to bitshift: ",
		Validate: a.checkInput,
	})
	if err != nil {
		return a.stopped(err)
	}

	codec, err := a.Registry.ForPath(inPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, "Loading file...")
	clip, err := decodeFile(codec, inPath)
	if err != nil {
		return err
	}

	a.Log.WithFields(logrus.Fields{
		"function": "Run",
		"input":    inPath,
		"format":   clip.Format.String(),
		"samples":  clip.Samples.Len(),
	}).Debug("Decoded input file")

	fmt.Fprintln(a.Out, describe(clip.Samples))
	depth, ok := audio.BitDepth(clip.Samples)
	if !ok {
		a.Log.WithFields(logrus.Fields{
			"function": "Run",
			"kind":     clip.Samples.Kind().String(),
		}).Info("Nothing to shift, skipping output")
		return nil
	}
	fmt.Fprintln(a.Out)

	amount, err := a.resolveAmount(opts, depth)
	if err != nil {
		return a.stopped(err)
	}

	fmt.Fprintln(a.Out, "Shifting audio...")
	if err := shift.Apply(clip.Samples, amount); err != nil {
		return err
	}
	a.Log.WithFields(logrus.Fields{
		"function": "Run",
		"amount":   amount,
		"depth":    depth,
	}).Debug("Shift applied")
	fmt.Fprintln(a.Out)

	outQuestion := prompt.Question{
		Prompt:   "Enter a path to save the shifted audio to: ",
		Validate: func(s string) error { return a.checkOutput(s, codec) },
	}
	outPath, err := a.resolve(opts.Output, opts.Output != "", opts.NoInput, "--output", outQuestion)
	if err != nil {
		return a.stopped(err)
	}
	outPath = withExtension(a.Registry, outPath, codec)

	fmt.Fprintf(a.Out, "Saving bit-shifted audio to %s...\n", outPath)
	if err := wavshift.WriteNew(codec, outPath, clip); err != nil {
		a.Log.WithFields(logrus.Fields{
			"function": "Run",
			"output":   outPath,
			"error":    err.Error(),
		}).Error("Failed to write output")
		return err
	}

	fmt.Fprintln(a.Out, "Audio saved successfully.")
	return nil
}

func (a *App) resolveAmount(opts Options, depth uint8) (int, error) {
	fmt.Fprintln(a.Out, "How many bits should I shift the samples?")

	given := ""
	if opts.AmountSet {
		given = fmt.Sprint(opts.Amount)
	}

	q := prompt.Question{
		Prompt:   "Negative=R (quieter), Positive=L (louder): ",
		Validate: func(s string) error { return checkAmount(s, depth) },
	}

	answer, err := a.resolve(given, opts.AmountSet, opts.NoInput, "--amount", q)
	if err != nil {
		return 0, err
	}

	amount, _ := parseAmount(answer)
	return amount, nil
}

// resolve returns value when it passes q.Validate, and otherwise asks for it.
// With prompting disabled a missing or invalid value is an error.
func (a *App) resolve(value string, have, noInput bool, flag string, q prompt.Question) (string, error) {
	if have {
		err := q.Validate(value)
		if err == nil {
			return value, nil
		}
		if noInput {
			return "", fmt.Errorf("%s %q: %w", flag, value, err)
		}
		fmt.Fprintln(a.Out, err)
	} else if noInput {
		return "", fmt.Errorf("%w: %s is required when prompting is disabled", ErrMissingValue, flag)
	}

	return a.Asker.Ask(q)
}

func (a *App) stopped(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		a.Log.WithFields(logrus.Fields{
			"function": "Run",
		}).Info("Prompt cancelled by user")
		fmt.Fprintln(a.Out, "Cancelled.")
		return nil
	}
	return err
}

func describe(b audio.Buffer) string {
	switch b.Kind() {
	case audio.KindEmpty:
		return "This file contains no data."
	case audio.KindFloatingPoint:
		return "This file is floating point; bit shifts won't really work."
	}

	depth, _ := b.BitDepth()
	return fmt.Sprintf("This file's bit depth is %d.", depth)
}
