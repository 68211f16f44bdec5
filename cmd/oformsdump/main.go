// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	oforms "github.com/oforms-go/oforms"
	"github.com/spf13/cobra"
)

var (
	all     bool
	verbose bool
	compObj bool
	form    bool
	sites   bool
)

func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		log.Println("JSON encode error:", err)
		return string(buf)
	}
	return pretty.String()
}

// siteDump is the JSON-friendly shape SiteIterator.Next's result is
// flattened into: ControlKind doesn't marshal cleanly on its own (it
// holds a pointer into the form's class table), so the dumper resolves it
// to a short descriptive string instead.
type siteDump struct {
	Depth   uint8              `json:"depth"`
	Control string             `json:"control"`
	Site    oforms.OleSiteConcrete `json:"site"`
}

func describeControl(ck oforms.ControlKind) string {
	switch ck.Tag {
	case oforms.ControlKindGlobal:
		return ck.Cached.String()
	case oforms.ControlKindClassTable:
		return fmt.Sprintf("ClassTable(ClsID=%s)", ck.ClassInfo.ClsID)
	default:
		return "Unknown"
	}
}

func dumpForm(dir string, cmd *cobra.Command) {
	log.Printf("Processing stream directory %s", dir)

	f, err := oforms.New(dir, &oforms.Options{})
	if err != nil {
		log.Printf("Error while opening %s: %v", dir, err)
		return
	}
	defer f.Close()

	wantCompObj, _ := cmd.Flags().GetBool("compobj")
	if wantCompObj || all {
		b, _ := json.Marshal(f.CompObj)
		fmt.Println(prettyPrint(b))
	}

	wantForm, _ := cmd.Flags().GetBool("form")
	if wantForm || all {
		b, _ := json.Marshal(f.Form)
		fmt.Println(prettyPrint(b))
	}

	wantSites, _ := cmd.Flags().GetBool("sites")
	if wantSites || all {
		it, err := f.Sites()
		if err != nil {
			log.Printf("Error while opening object stream: %v", err)
			return
		}
		var dumped []siteDump
		for {
			entry, ok, err := it.Next()
			if err != nil {
				log.Printf("Error while iterating sites: %v", err)
				break
			}
			if !ok {
				break
			}
			dumped = append(dumped, siteDump{
				Depth:   entry.Depth,
				Control: describeControl(entry.Control),
				Site:    entry.Site,
			})
		}
		b, _ := json.Marshal(dumped)
		fmt.Println(prettyPrint(b))
	}
}

func parse(cmd *cobra.Command, args []string) {
	for _, dir := range args {
		dumpForm(dir, cmd)
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "oformsdump",
		Short: "A MS-OFORMS UserForm parser",
		Long:  "Decodes the FormControl, CompObj, and site streams of a VBA/ActiveX UserForm",
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.0.1")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump [stream-dir...]",
		Short: "Dumps a decoded UserForm",
		Long:  "Each argument names a directory holding the extracted \"f\", \"o\", and \"\\x01CompObj\" stream files",
		Args:  cobra.MinimumNArgs(1),
		Run:   parse,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	dumpCmd.Flags().BoolVarP(&compObj, "compobj", "", false, "Dump CompObj")
	dumpCmd.Flags().BoolVarP(&form, "form", "", false, "Dump FormControl")
	dumpCmd.Flags().BoolVarP(&sites, "sites", "", false, "Dump sites")
	dumpCmd.Flags().BoolVarP(&all, "all", "", false, "Dump everything")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
