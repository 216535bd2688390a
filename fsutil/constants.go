package fsutil

import "os"

// DefaultFileMode represents the default file mode which will be used if a zero value file mode is provided for
// operations which create new files.
const DefaultFileMode os.FileMode = 0o660
