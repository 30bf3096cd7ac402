// Package meshio loads triangulated meshes from binary model files.
//
// The library turns a byte stream into an ordered list of triangles, each
// made of three single-precision vertices, for renderers and geometry
// pipelines that want a plain triangle soup.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	meshio/              Root package with the Decoder interface
//	├── stl/             Binary STL decoder
//	├── geom/            Vector3, Triangle and Bounds value types
//	├── errors/          Structured error types for debugging
//	└── cmd/stldump/     Command line inspector with an interactive browser
//
// # Quick Start
//
// Decode a file:
//
//	m, err := stl.DecodeFile("teapot.stl", stl.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Triangles[0])
//
// Or any io.Reader:
//
//	tris, err := stl.Decode(bytes.NewReader(data))
//
// # Logging
//
// Packages log through go.uber.org/zap and are silent by default:
//
//	l, _ := zap.NewDevelopment()
//	stl.SetLogger(l)
//
// # Thread Safety
//
// Decoders hold no per-stream state and are safe for concurrent use on
// distinct readers. SetLogger must be called before decoding starts.
package meshio
