//go:build darwin && cgo

package clipboard

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>
#include <stdlib.h>

// writeTextToPasteboard replaces the general pasteboard contents with text.
// Returns 1 on success, 0 on failure.
int writeTextToPasteboard(const char *text, unsigned long length) {
    @autoreleasepool {
        NSPasteboard *pasteboard = [NSPasteboard generalPasteboard];
        [pasteboard clearContents];

        NSString *string = [[NSString alloc] initWithBytes:text length:length encoding:NSUTF8StringEncoding];
        if (string == nil) {
            return 0;
        }
        return [pasteboard setString:string forType:NSPasteboardTypeString] ? 1 : 0;
    }
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Init is a no-op on macOS; the pasteboard needs no setup.
func Init() error {
	return nil
}

func nativeWrite(text string) error {
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))

	if C.writeTextToPasteboard(cText, C.ulong(len(text))) == 0 {
		return fmt.Errorf("pasteboard rejected %d bytes", len(text))
	}
	return nil
}
