package http

import (
	"io"
	"mime/multipart"
	"net/url"
)

// leerArchivo lee el contenido completo de un archivo subido por multipart.
func leerArchivo(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// urlDecode decodifica un segmento de ruta (los nombres de imagen llevan
// el nombre original del archivo subido, que puede traer espacios).
func urlDecode(s string) (string, error) {
	return url.PathUnescape(s)
}
