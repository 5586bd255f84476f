package bigearthnet

// Target spatial shape of every decoded sample. Sentinel-2 bands come at 10,
// 20 and 60 m resolutions; lower-resolution bands are upsampled to match.
const (
	imageHeight = 120
	imageWidth  = 120
)

// splitMeta describes one downloadable split manifest.
type splitMeta struct {
	URL      string
	Filename string
	MD5      string
}

// sourceMeta describes one downloadable satellite-source archive and the
// directory it extracts to under the dataset root.
type sourceMeta struct {
	URL       string
	Filename  string
	MD5       string
	Directory string
}

var splitsMetadata = map[string]splitMeta{
	"train": {
		URL:      "https://git.tu-berlin.de/rsim/BigEarthNet-MM_19-classes_models/-/raw/9a5be07346ab0884b2d9517475c27ef9db9b5104/splits/train.csv?inline=false",
		Filename: "bigearthnet-train.csv",
		MD5:      "623e501b38ab7b12fe44f0083c00986d",
	},
	"val": {
		URL:      "https://git.tu-berlin.de/rsim/BigEarthNet-MM_19-classes_models/-/raw/9a5be07346ab0884b2d9517475c27ef9db9b5104/splits/val.csv?inline=false",
		Filename: "bigearthnet-val.csv",
		MD5:      "22efe8ed9cbd71fa10742ff7df2b7978",
	},
	"test": {
		URL:      "https://git.tu-berlin.de/rsim/BigEarthNet-MM_19-classes_models/-/raw/9a5be07346ab0884b2d9517475c27ef9db9b5104/splits/test.csv?inline=false",
		Filename: "bigearthnet-test.csv",
		MD5:      "697fb90677e30571b9ac7699b7e5b432",
	},
}

var sourcesMetadata = map[string]sourceMeta{
	"s1": {
		URL:       "https://bigearth.net/downloads/BigEarthNet-S1-v1.0.tar.gz",
		Filename:  "BigEarthNet-S1-v1.0.tar.gz",
		MD5:       "94ced73440dea8c7b9645ee738c5a172",
		Directory: "sentinel-1",
	},
	"s2": {
		URL:       "https://bigearth.net/downloads/BigEarthNet-S2-v1.0.tar.gz",
		Filename:  "BigEarthNet-S2-v1.0.tar.gz",
		MD5:       "5a64e9ce38deb036a435a7b59494924c",
		Directory: "sentinel-2",
	},
}
