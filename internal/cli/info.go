package cli

import (
	"text/template"

	"github.com/ik5/wavshift/audio"
	"github.com/ik5/wavshift/shift"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show the format of an audio file and the shift amounts it accepts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Info(args[0])
		},
	}
}

var infoTmpl = template.Must(template.New("").Parse(
	`File:         {{.Path}}
Format:       {{.Clip.Format}}
Samples:      {{.Clip.Samples.Kind}}, {{.Clip.Samples.Len}} values ({{.Clip.Frames}} frames)
{{if .Shiftable}}Shift range:  {{.Lo}} to {{.Hi}}, excluding 0
{{else}}Shift range:  none, {{.Reason}}
{{end}}`,
))

// Info prints the decoded format of path.
func (a *App) Info(path string) error {
	codec, err := a.Registry.ForPath(path)
	if err != nil {
		return err
	}

	clip, err := decodeFile(codec, path)
	if err != nil {
		return err
	}

	a.Log.WithFields(logrus.Fields{
		"function": "Info",
		"input":    path,
	}).Debug("Decoded file for info")

	data := struct {
		Path      string
		Clip      *audio.Clip
		Shiftable bool
		Lo, Hi    int
		Reason    string
	}{Path: path, Clip: clip}

	if depth, ok := audio.BitDepth(clip.Samples); ok {
		data.Shiftable = true
		data.Lo, data.Hi = shift.Range(depth)
	} else {
		data.Reason = describe(clip.Samples)
	}

	return infoTmpl.Execute(a.Out, data)
}
