package main

// See doc.go for documentation
import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/activity/interval"
	"github.com/grailbio/activity/rttm"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

var (
	sampleRate = flag.Int("sample-rate", rttm.DefaultOpts.SampleRate, "Samples per second used to convert segment times")
	length     = flag.Int64("length", int64(rttm.DefaultOpts.Length), "Mask length in samples; negative means unknown")
	region     = flag.String("region", "", "If nonempty, also print each mask over this region (start:stop) as 0s and 1s")
	outPath    = flag.String("out", "", "Output TSV path; defaults to stdout")
)

func activityMaskUsage() {
	fmt.Printf("Usage: %s [OPTIONS] rttmpath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = activityMaskUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Expected exactly one positional argument (rttmpath), got %d", flag.NArg())
	}
	ctx := vcontext.Background()
	opts := rttm.Opts{
		SampleRate: *sampleRate,
		Length:     interval.PosType(*length),
	}
	masks, err := rttm.Load(ctx, flag.Arg(0), opts)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var w io.Writer = os.Stdout
	var out file.File
	if *outPath != "" {
		if out, err = file.Create(ctx, *outPath); err != nil {
			log.Fatalf("%v", err)
		}
		w = out.Writer(ctx)
	}
	if err = dump(w, masks, *region); err != nil {
		log.Fatalf("%v", err)
	}
	if out != nil {
		if err = out.Close(ctx); err != nil {
			log.Fatalf("%v", err)
		}
	}
	log.Debug.Printf("exiting")
}
