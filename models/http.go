package models

// DirectoryRequest is the body of directory-scoped requests
// (mkdir, list, remove, import).
type DirectoryRequest struct {
	Directory string `json:"directory"`
	Name      string `json:"name,omitempty"`
}

// TransferRequest is the body of copy and move requests.
type TransferRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DownloadRequest carries the passphrase used to decrypt a bundle. An empty
// passphrase falls back to the keystore.
type DownloadRequest struct {
	Passphrase string `json:"passphrase"`
}

// UploadResponse is returned by every upload endpoint.
type UploadResponse struct {
	CID string `json:"cid"`
}

// EncryptedResponse answers whether a passphrase is stored for a cid.
type EncryptedResponse struct {
	IsEncrypted bool `json:"is_encrypted"`
}

// PinStatusResponse reports the cached pin status of a cid.
type PinStatusResponse struct {
	CID    string    `json:"cid"`
	Status PinStatus `json:"status"`
}

// BundleUploadRequest holds the form fields of the encrypted upload
// endpoints. The payload itself travels as a multipart file part.
type BundleUploadRequest struct {
	Directory  string `json:"directory"`
	Name       string `json:"name"`
	Passphrase string `json:"passphrase"`
	Remember   bool   `json:"remember"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
