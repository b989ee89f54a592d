package domain

const (
	// ManifestFileName is the project manifest file name.
	ManifestFileName = "package.json"

	// InstallDirName is the directory packages are installed into.
	InstallDirName = "node_modules"

	// DirPerm is the permission used for created directories.
	DirPerm = 0o755

	// FilePerm is the permission used for created files.
	FilePerm = 0o644
)
