// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ToolNotFoundId Id = iota + 1
	NoExportsFoundId
	ExportReadFailedId
	SettingsLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // project documentation links for this issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Split/join tool not found!

The external split/join tool could not be located, so no export can be
prepared or merged.

## Things you can try:
- Check which command is configured:
~~~
$ calstage config show
~~~

- Point calstage at the tool binary:
~~~
$ calstage config set tool.bin /path/to/splitjoin
~~~

- Or configure shell one-liners instead of a binary:
~~~
$ calstage config set tool.split_command 'splitjoin split -source "$CALSTAGE_SOURCE" -destination "$CALSTAGE_DESTINATION"'
~~~

- Run the environment check:
~~~
$ calstage doctor
~~~`,
	}

	noExportsFoundIssue = &Issue{
		id: NoExportsFoundId,
		mdMsg: `
# No exports found!

None of the recognized source codes has a matching export file in the
working directory.

## What calstage looks for:
One file per recognized code, named ` + "`<CODE>.txt`" + ` (e.g. ` + "`DEV.txt`" + `),
directly inside the working directory.

## Things you can try:
- Check which codes and working directory are configured:
~~~
$ calstage config show
~~~

- Export the objects from your modeling tool into the working directory
- Change the working directory:
~~~
$ calstage config set working_dir /path/to/exports
~~~`,
	}

	exportReadFailedIssue = &Issue{
		id: ExportReadFailedId,
		mdMsg: `
# Failed to read export!

The selected export file exists but could not be read.

## Common causes:
- Insufficient file permissions
- The file is locked by the modeling tool
- The file was removed after it was listed

## Things you can try:
- Close the modeling tool and retry
- Check permissions on the file
- Re-run the listing to see the current state:
~~~
$ calstage sources
~~~`,
	}

	settingsLoadFailedIssue = &Issue{
		id: SettingsLoadFailedId,
		mdMsg: `
# Failed to load settings!

Could not load the calstage settings file.

## Settings file locations:
- Linux: ~/.config/calstage/config.json
- macOS: ~/Library/Application Support/calstage/config.json
- Windows: %APPDATA%\calstage\config.json

## Things you can try:
- Create a default settings file:
~~~
$ calstage config init
~~~

- Check the JSON syntax of the file
- Remove the file to fall back to defaults

## Example settings:
~~~json
{
  "working_dir": "/home/user/exports",
  "source_codes": ["DEV", "TST", "PRD"],
  "tool": {"bin": "splitjoin"}
}
~~~`,
	}

	issues = map[Id]*Issue{
		toolNotFoundIssue.Id():       toolNotFoundIssue,
		noExportsFoundIssue.Id():     noExportsFoundIssue,
		exportReadFailedIssue.Id():   exportReadFailedIssue,
		settingsLoadFailedIssue.Id(): settingsLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
