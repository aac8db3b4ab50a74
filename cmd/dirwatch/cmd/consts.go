package cmd

const (
	CheckDocumentString = `
Go to check the documentation
https://pkg.go.dev/github.com/twinpane/dirwatch
for some help.
`
	DirwatchCfgPath = "/etc/dirwatch/config.yaml"
)
