package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/wavshift/audio"
	"github.com/ik5/wavshift/shift"
)

// retry is a validation failure worded for the person at the prompt.
type retry string

func (r retry) Error() string { return string(r) }

func (a *App) checkInput(path string) error {
	if path == "" {
		return retry("Please enter a path.")
	}

	info, err := os.Stat(path)
	if err != nil {
		return retry("File not found. Enter a valid filepath.")
	}
	if info.IsDir() {
		return retry("That path is a folder. Enter the path of a file.")
	}

	if _, err := a.Registry.ForPath(path); err != nil {
		return retry("I can only handle ." + strings.Join(a.Registry.Formats(), ", .") + " files.")
	}

	return nil
}

func (a *App) checkOutput(path string, codec audio.Codec) error {
	if path == "" {
		return retry("Please enter a path.")
	}

	path = withExtension(a.Registry, path, codec)

	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return retry("That path already points to a folder. Enter a different path (or delete that folder).")
		}
		return retry("That file already exists. Enter a different path (or delete that file).")
	}

	return nil
}

func parseAmount(s string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(s, "+"))
}

func checkAmount(s string, depth uint8) error {
	amount, err := parseAmount(s)
	if err != nil {
		return retry("That's not a whole number. Enter a number of bits.")
	}

	err = shift.Validate(depth, amount)
	switch {
	case errors.Is(err, shift.ErrZeroShift):
		return retry("Shifting by 0 bits won't change the audio at all. Enter something other than 0.")
	case errors.Is(err, shift.ErrShiftTooLarge):
		lo, hi := shift.Range(depth)
		return retry(fmt.Sprintf("Shifting that far will completely blank all the samples. Enter a number from %d to %d.", lo, hi))
	}
	return err
}

// withExtension keeps path when its extension already maps to codec and
// otherwise replaces the extension with the codec's own.
func withExtension(reg *audio.Registry, path string, codec audio.Codec) string {
	ext := filepath.Ext(path)
	if c, ok := reg.Get(ext); ok && c == codec {
		return path
	}
	return strings.TrimSuffix(path, ext) + "." + codec.Extension()
}

func decodeFile(codec audio.Codec, path string) (*audio.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	clip, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return clip, nil
}
