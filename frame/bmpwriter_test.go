package frame

import (
	"encoding/binary"
	"image"
	"image/color"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/image/bmp"
)

var _ = Describe("BMPWriter", func() {
	var (
		dir string
		w   *BMPWriter
		img *image.RGBA
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		w = NewBMPWriter(dir)

		img = image.NewRGBA(image.Rect(0, 0, 540, 180))
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xff
		}
		img.SetRGBA(40, 30, color.RGBA{R: 218, G: 102, B: 114, A: 0xff})
	})

	It("should start numbering after the first counter", func() {
		path, err := w.WriteFrame(img)

		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, "heap10000001.bmp")))
		Expect(w.Counter()).To(Equal(10000001))
		Expect(w.Written()).To(Equal(1))
	})

	It("should increment the counter for every frame", func() {
		_, err := w.WriteFrame(img)
		Expect(err).NotTo(HaveOccurred())
		path, err := w.WriteFrame(img)
		Expect(err).NotTo(HaveOccurred())

		Expect(filepath.Base(path)).To(Equal("heap10000002.bmp"))
		Expect(w.Written()).To(Equal(2))
	})

	It("should honor a custom prefix", func() {
		path, err := w.WithPrefix("frame").WriteFrame(img)

		Expect(err).NotTo(HaveOccurred())
		Expect(filepath.Base(path)).To(Equal("frame10000001.bmp"))
	})

	It("should write a 24-bit bitmap with the frame content", func() {
		path, err := w.WriteFrame(img)
		Expect(err).NotTo(HaveOccurred())

		raw, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw[:2])).To(Equal("BM"))
		Expect(binary.LittleEndian.Uint16(raw[28:30])).To(Equal(uint16(24)))

		f, err := os.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		decoded, err := bmp.Decode(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Bounds().Dx()).To(Equal(540))
		Expect(decoded.Bounds().Dy()).To(Equal(180))

		r, g, b, _ := decoded.At(40, 30).RGBA()
		Expect([]uint32{r >> 8, g >> 8, b >> 8}).To(Equal([]uint32{218, 102, 114}))

		r, g, b, _ = decoded.At(0, 0).RGBA()
		Expect([]uint32{r, g, b}).To(Equal([]uint32{0, 0, 0}))
	})

	It("should fail when the directory does not exist", func() {
		w = NewBMPWriter(filepath.Join(dir, "missing"))

		_, err := w.WriteFrame(img)

		Expect(err).To(HaveOccurred())
		Expect(w.Written()).To(Equal(0))
	})
})
