package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"care-label-reader/config"
	app "care-label-reader/internal/application"
	"care-label-reader/internal/domain/entity"
	"care-label-reader/internal/domain/port"
	"care-label-reader/internal/infrastructure/acquisition"
	"care-label-reader/internal/infrastructure/report"
	"care-label-reader/internal/infrastructure/templates"
	"care-label-reader/internal/infrastructure/vision"
)

func main() {
	imagePath := flag.String("image", "", "path to the label photo")
	camera := flag.Int("camera", -1, "camera device to capture from instead of -image")
	templatesDir := flag.String("templates", "", "templates directory (default LABEL_TEMPLATES_DIR or ./templates)")
	asJSON := flag.Bool("json", false, "print the reading as JSON")
	annotated := flag.String("annotated", "", "write the annotated label JPEG to this path")
	debugDir := flag.String("debug-dir", "", "write intermediate stage images to this directory")
	debug := flag.Int("debug", -1, "debug level, overrides LABEL_DEBUG")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *templatesDir != "" {
		cfg.TemplatesDir = *templatesDir
	}
	if *debug >= 0 {
		cfg.Pipeline.Debug = *debug
	}

	src, err := frameSource(*imagePath, *camera)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	var opts []vision.Option
	if *debugDir != "" {
		if err := os.MkdirAll(*debugDir, 0o755); err != nil {
			log.Fatalf("Failed to create debug dir: %v", err)
		}
		opts = append(opts, vision.WithObserver(stageWriter(*debugDir)))
	}

	pipeline, err := vision.LoadPipeline(ctx, cfg.Pipeline, templates.NewDirLoader(cfg.TemplatesDir), opts...)
	if err != nil {
		log.Fatalf("Failed to create pipeline: %v", err)
	}
	defer pipeline.Close()

	formatter := report.NewFormatter()
	out, err := app.NewLabelService(nil, pipeline, nil).Read(ctx, src)
	if errors.Is(err, entity.ErrNoLabelFound) {
		fmt.Fprintln(os.Stderr, "no label found")
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Failed to read label: %v", err)
	}

	if *asJSON {
		raw, err := formatter.JSON(out.Reading)
		if err != nil {
			log.Fatalf("Failed to encode reading: %v", err)
		}
		fmt.Println(string(raw))
	} else {
		for _, code := range out.Reading.Codes() {
			fmt.Println(code)
		}
	}

	if *annotated != "" && len(out.Annotated) > 0 {
		if err := os.WriteFile(*annotated, out.Annotated, 0o644); err != nil {
			log.Fatalf("Failed to write annotated image: %v", err)
		}
	}
}

func frameSource(path string, camera int) (port.FrameSource, error) {
	switch {
	case path != "" && camera >= 0:
		return nil, errors.New("use either -image or -camera")
	case path != "":
		return acquisition.New(acquisition.KindFile, acquisition.Options{Path: path})
	case camera >= 0:
		return acquisition.New(acquisition.KindCamera, acquisition.Options{Device: camera})
	default:
		return nil, errors.New("-image or -camera is required")
	}
}

// stageWriter сохраняет промежуточные изображения с порядковым номером
func stageWriter(dir string) vision.Observer {
	n := 0
	return func(stage string, img image.Image) {
		n++
		path := filepath.Join(dir, fmt.Sprintf("%02d_%s.png", n, stage))
		if err := imaging.Save(img, path); err != nil {
			log.Printf("save %s: %v", path, err)
		}
	}
}
