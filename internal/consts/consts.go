package consts

const (
	CheckDocumentString = `
Go to check
1. documentation https://pkg.go.dev/github.com/black-desk/fsdetect/cmd/fsdetect
2. example configuration misc/config/example.yaml
for some help.
`

	FsdetectCfgPath = "/etc/fsdetect/config.yaml"
)
