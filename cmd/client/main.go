package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"image-previewer/pkg/helper"

	"github.com/gofiber/fiber/v2"
)

const LIMIT = 5

type RequestProgress struct {
	mu          sync.RWMutex
	total       int
	done        int
	failed      int
	isCancelled bool
}

func (rp *RequestProgress) IncrementDone() {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.done++
}

func (rp *RequestProgress) IncrementFailed() {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.failed++
}

func (rp *RequestProgress) SetCancelled() {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.isCancelled = true
}

func (rp *RequestProgress) IsCancelled() bool {
	rp.mu.RLock()
	defer rp.mu.RUnlock()
	return rp.isCancelled
}

func (rp *RequestProgress) GetProgress() (done, failed, total int) {
	rp.mu.RLock()
	defer rp.mu.RUnlock()
	return rp.done, rp.failed, rp.total
}

type previewFlags struct {
	server           string
	root             string
	previewRoot      string
	previewSubfolder string
	width            int
	height           int
	fit              string
	quality          int
	convertHeic      bool
	preserveMetadata bool
}

// previewURL builds the request for one file; fileType comes from the extension.
func previewURL(f previewFlags, file string) string {
	q := url.Values{}
	q.Set("inputMainDirName", f.root)
	q.Set("fileNameWithExtension", file)
	q.Set("fileType", helper.GetMimeTypeFromExtension(file))
	q.Set("convertHeicToFullSizeJpeg", strconv.FormatBool(f.convertHeic))
	if f.previewRoot != "" {
		q.Set("outputPreviewMainDirName", f.previewRoot)
	}
	if f.previewSubfolder != "" {
		q.Set("previewSubfolder", f.previewSubfolder)
	}
	if f.width > 0 {
		q.Set("resizeOptionsWidth", strconv.Itoa(f.width))
	}
	if f.height > 0 {
		q.Set("resizeOptionsHeight", strconv.Itoa(f.height))
	}
	if f.fit != "" {
		q.Set("resizeOptionsFit", f.fit)
	}
	if f.quality > 0 {
		q.Set("jpegOptionsQuality", strconv.Itoa(f.quality))
	}
	if f.preserveMetadata {
		q.Set("withMetadata", "true")
	}
	return strings.TrimRight(f.server, "/") + "/api/v1/preview?" + q.Encode()
}

// imageArgs drops arguments whose extension is not a known image type.
func imageArgs(args []string) []string {
	files := make([]string, 0, len(args))
	for _, arg := range args {
		if !helper.IsImageFile(arg) {
			log.Printf("%s atlanıyor: görsel dosyası değil\n", arg)
			continue
		}
		files = append(files, arg)
	}
	return files
}

func main() {
	var f previewFlags
	flag.StringVar(&f.server, "server", "http://localhost:3005", "Server base URL")
	flag.StringVar(&f.root, "root", "temp", "Input root (temp, volumes, previews)")
	flag.StringVar(&f.previewRoot, "preview-root", "", "Preview root, defaults to the input root")
	flag.StringVar(&f.previewSubfolder, "subfolder", "", "Preview subfolder")
	flag.IntVar(&f.width, "width", 0, "Resize width")
	flag.IntVar(&f.height, "height", 0, "Resize height")
	flag.StringVar(&f.fit, "fit", "", "Resize fit (cover, contain, fill, inside, outside)")
	flag.IntVar(&f.quality, "quality", 0, "JPEG quality, 0 uses the server default")
	flag.BoolVar(&f.convertHeic, "convert-heic", true, "Write a full-size JPEG for HEIC inputs")
	flag.BoolVar(&f.preserveMetadata, "metadata", false, "Copy EXIF from HEIC inputs")
	flag.Parse()

	files := imageArgs(flag.Args())
	if len(files) == 0 {
		log.Fatal("kullanım: client [flags] <dosya> [dosya...]")
	}

	fmt.Printf("Sunucu: %s\n", f.server)
	fmt.Printf("Dosya sayısı: %d\n", len(files))
	fmt.Println("Ctrl+C ile iptal edebilirsiniz...")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	sem := make(chan struct{}, LIMIT)
	var wg sync.WaitGroup
	progress := &RequestProgress{total: len(files)}
	start := time.Now()

	for _, file := range files {
		if progress.IsCancelled() {
			break
		}

		wg.Add(1)
		go func(file string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if progress.IsCancelled() {
				return
			}

			code, body, errs := fiber.Get(previewURL(f, file)).Timeout(2 * time.Minute).Bytes()
			if len(errs) > 0 {
				log.Printf("%s gönderilemedi: %v\n", file, errs[0])
				progress.IncrementFailed()
				return
			}
			if code != fiber.StatusOK {
				log.Printf("%s: HTTP %d %s\n", file, code, string(body))
				progress.IncrementFailed()
				return
			}

			fmt.Printf("%s -> %s\n", file, string(body))
			progress.IncrementDone()
		}(file)
	}

	waitCh := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitCh)
	}()

	select {
	case <-waitCh:
		done, failed, total := progress.GetProgress()
		fmt.Printf("Tamamlandı: %d/%d başarılı, %d hata (%s)\n", done, total, failed, time.Since(start).Round(time.Millisecond))
		if failed > 0 {
			os.Exit(1)
		}
	case <-sigCh:
		// Sunucuda başlamış istekler tamamlanır, yenileri gönderilmez
		progress.SetCancelled()
		fmt.Println("\nİptal edildi")
		os.Exit(130)
	}
}
