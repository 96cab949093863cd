package common

import "github.com/blang/semver/v4"

// Version current apklinker version.
var Version semver.Version

func init() {
	Version = semver.MustParse("0.4.1")
}
