package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	impassVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())
	b.Test().Does(Go().TestAll())
	b.Build().DependsOnRunner("clean-build", "", RemoveDir("build"))
	b.Package().DependsOnRunner("clean-dist", "", RemoveDir("dist"))

	impass := NewAppBuild("impass", "cmd/impass", impassVersion).
		Build(func(gb *GoBuild) {
			gb.
				StripDebugSymbols().
				TrimPath().
				Env("CGO_ENABLED", "0").
				SetVariable("main", "version", impassVersion)
		})
	impass.HostVariant()
	impass.Variant("windows", "amd64")
	impass.Variant("linux", "amd64")
	impass.Variant("linux", "arm64")
	impass.Variant("darwin", "amd64")
	impass.Variant("darwin", "arm64")
	b.ImportApp(impass)

	b.Execute()
}
