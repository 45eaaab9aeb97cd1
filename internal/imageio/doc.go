// Package imageio loads the input image and writes the annotated result.
//
// # Supported Formats
//
// Loading decodes JPEG, PNG, GIF and BMP. JPEG orientation tags are applied
// so the image is upright before detection. Saving picks the encoder from the
// output file extension:
//   - ".jpg", ".jpeg" -> JPEG at quality 95
//   - ".png" -> PNG
//   - ".bmp" -> BMP
//
// Any other extension is an error.
//
// # Error Handling
//
// Functions return errors for:
//   - Missing or unreadable files
//   - Files that are not a decodable image
//   - Unsupported output extensions
//   - Encoding or write failures
package imageio
