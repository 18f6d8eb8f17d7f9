// Package document hides a message as the last paragraph of a Word (.docx) document
package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"stegmsg/pkg/config"
	"strings"
)

const (
	documentPart            = "word/document.xml"
	wordprocessingNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

var (
	ErrInvalidDocument = errors.New("file is not a valid docx document")
	ErrMessageNotFound = errors.New("no message found in the last paragraph of the document")
	ErrOutputIsSource  = errors.New("output path must differ from the source document")
)

// AppendParagraph writes a copy of the document at srcPath to outputPath with message appended as a new last
// paragraph. An empty outputPath uses config.DefaultDocumentOutputPath
func AppendParagraph(srcPath, outputPath, message string) (string, error) {
	if outputPath == "" {
		outputPath = config.DefaultDocumentOutputPath
	}
	if absPath(srcPath) == absPath(outputPath) {
		return "", ErrOutputIsSource
	}

	zr, err := zip.OpenReader(srcPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}
	defer zr.Close()

	documentXML, err := readPart(&zr.Reader, documentPart)
	if err != nil {
		return "", err
	}
	modifiedXML, err := insertParagraph(documentXML, message)
	if err != nil {
		return "", err
	}

	if err = writeDocument(&zr.Reader, outputPath, modifiedXML); err != nil {
		return "", err
	}
	return outputPath, nil
}

// LastParagraph returns the text of the last paragraph in the body of the document at path
func LastParagraph(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}
	defer zr.Close()

	documentXML, err := readPart(&zr.Reader, documentPart)
	if err != nil {
		return "", err
	}

	paragraphs, err := bodyParagraphs(documentXML)
	if err != nil {
		return "", err
	}
	if len(paragraphs) == 0 || paragraphs[len(paragraphs)-1] == "" {
		return "", ErrMessageNotFound
	}
	return paragraphs[len(paragraphs)-1], nil
}

func readPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%w: missing %s", ErrInvalidDocument, name)
}

func isWordElement(name xml.Name, local string) bool {
	return name.Space == wordprocessingNamespace && name.Local == local
}

// elementPrefix returns the namespace prefix of the start tag at the beginning of raw, empty when unprefixed
func elementPrefix(raw []byte) string {
	nameEnd := bytes.IndexAny(raw, " \t\r\n/>")
	if nameEnd < 0 {
		return ""
	}
	if colon := bytes.IndexByte(raw[:nameEnd], ':'); colon > 0 {
		return string(raw[1:colon])
	}
	return ""
}

func qualifiedName(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

func paragraphXML(prefix, message string) ([]byte, error) {
	var paragraph bytes.Buffer
	fmt.Fprintf(&paragraph, `<%s><%s><%s xml:space="preserve">`,
		qualifiedName(prefix, "p"), qualifiedName(prefix, "r"), qualifiedName(prefix, "t"))
	if err := xml.EscapeText(&paragraph, []byte(message)); err != nil {
		return nil, err
	}
	fmt.Fprintf(&paragraph, `</%s></%s></%s>`,
		qualifiedName(prefix, "t"), qualifiedName(prefix, "r"), qualifiedName(prefix, "p"))
	return paragraph.Bytes(), nil
}

func splice(documentXML []byte, from, to int64, insert []byte) []byte {
	spliced := make([]byte, 0, len(documentXML)+len(insert))
	spliced = append(spliced, documentXML[:from]...)
	spliced = append(spliced, insert...)
	return append(spliced, documentXML[to:]...)
}

// insertParagraph adds the paragraph as the last block of the body. A trailing section properties element stays in
// place since it must remain the last child of the body. The paragraph uses the same prefix as the body element
func insertParagraph(documentXML []byte, message string) ([]byte, error) {
	decoder := xml.NewDecoder(bytes.NewReader(documentXML))

	var depth, bodyDepth int
	var bodyPrefix string
	var lastChildStart int64
	var lastChildIsSectPr bool
	for {
		offset := decoder.InputOffset()
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: document has no body", ErrInvalidDocument)
		} else if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
		}

		switch el := token.(type) {
		case xml.StartElement:
			depth++
			switch {
			case bodyDepth == 0 && isWordElement(el.Name, "body"):
				bodyDepth = depth
				bodyPrefix = elementPrefix(documentXML[offset:])
			case bodyDepth > 0 && depth == bodyDepth+1:
				lastChildStart = offset
				lastChildIsSectPr = isWordElement(el.Name, "sectPr")
			}
		case xml.EndElement:
			if bodyDepth == 0 || depth != bodyDepth {
				depth--
				continue
			}

			paragraph, err := paragraphXML(bodyPrefix, message)
			if err != nil {
				return nil, err
			}
			bodyName := qualifiedName(bodyPrefix, "body")
			switch {
			case lastChildIsSectPr:
				return splice(documentXML, lastChildStart, lastChildStart, paragraph), nil
			case bytes.HasPrefix(documentXML[offset:], []byte("</"+bodyName)):
				return splice(documentXML, offset, offset, paragraph), nil
			default:
				// self-closing body, offset is just past "/>"
				expanded := append(append([]byte(">"), paragraph...), "</"+bodyName+">"...)
				return splice(documentXML, offset-2, offset, expanded), nil
			}
		}
	}
}

func bodyParagraphs(documentXML []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(documentXML))

	var paragraphs []string
	var current strings.Builder
	var depth, bodyDepth, paragraphDepth int
	var inText bool
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return paragraphs, nil
		} else if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
		}

		switch el := token.(type) {
		case xml.StartElement:
			depth++
			switch {
			case bodyDepth == 0 && isWordElement(el.Name, "body"):
				bodyDepth = depth
			case bodyDepth > 0 && depth == bodyDepth+1 && isWordElement(el.Name, "p"):
				paragraphDepth = depth
				current.Reset()
			case paragraphDepth > 0 && isWordElement(el.Name, "t"):
				inText = true
			case paragraphDepth > 0 && isWordElement(el.Name, "tab"):
				current.WriteByte('\t')
			case paragraphDepth > 0 && (isWordElement(el.Name, "br") || isWordElement(el.Name, "cr")):
				current.WriteByte('\n')
			}
		case xml.EndElement:
			if isWordElement(el.Name, "t") {
				inText = false
			}
			if paragraphDepth > 0 && depth == paragraphDepth {
				paragraphs = append(paragraphs, current.String())
				paragraphDepth = 0
			}
			depth--
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}
}

func writeDocument(zr *zip.Reader, outputPath string, documentXML []byte) (retErr error) {
	output, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := output.Close(); retErr == nil {
			retErr = closeErr
		}
		if retErr != nil {
			_ = os.Remove(outputPath)
		}
	}()

	zw := zip.NewWriter(output)
	for _, f := range zr.File {
		if f.Name != documentPart {
			if err = zw.Copy(f); err != nil {
				return err
			}
			continue
		}

		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: f.Method, Modified: f.Modified})
		if err != nil {
			return err
		}
		if _, err = w.Write(documentXML); err != nil {
			return err
		}
	}
	return zw.Close()
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
