// md5sum prints the MD5 digest of standard input.
package main

import (
	"os"

	"github.com/stymphalian/iku_md5/cmd/md5sum/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
