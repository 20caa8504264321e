package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateShareQR generates a QR code image for a challenge share link
	GenerateShareQR(shareToken string) ([]byte, error)

	// ShareURL builds the public challenge share URL for a share token
	ShareURL(shareToken string) string

	// GenerateFavoriteShareQR generates a QR code image for a favorites share link
	GenerateFavoriteShareQR(shareToken string) ([]byte, error)

	// FavoriteShareURL builds the public favorites share URL for a share token
	FavoriteShareURL(shareToken string) string
}
