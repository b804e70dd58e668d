// Package cp437 holds the 8×8 bitmap glyphs of the IBM PC code page 437
// character set.
package cp437

// Glyphs maps every byte value to its 8×8 bitmap. Row 0 is the most
// significant byte and the leftmost pixel of a row is its most significant
// bit, matching the fill pattern layout used by the drawer.
//
// The table was captured from the VGA ROM font as exposed by DOSBox.
var Glyphs = [256]uint64{
	0x0000000000000000, // 0x00
	0x7e81a581bd99817e, // 0x01
	0x7effdbffc3e7ff7e, // 0x02
	0x6cfefefe7c381000, // 0x03
	0x10387cfe7c381000, // 0x04
	0x387c38fefe7c387c, // 0x05
	0x1010387cfe7c387c, // 0x06
	0x0000183c3c180000, // 0x07
	0xffffe7c3c3e7ffff, // 0x08
	0x003c664242663c00, // 0x09
	0xffc399bdbd99c3ff, // 0x0a
	0x0f070f7dcccccc78, // 0x0b
	0x3c6666663c187e18, // 0x0c
	0x3f333f303070f0e0, // 0x0d
	0x7f637f636367e6c0, // 0x0e
	0x995a3ce7e73c5a99, // 0x0f
	0x80e0f8fef8e08000, // 0x10
	0x020e3efe3e0e0200, // 0x11
	0x183c7e18187e3c18, // 0x12
	0x6666666666006600, // 0x13
	0x7fdbdb7b1b1b1b00, // 0x14
	0x3e63386c6c38cc78, // 0x15
	0x000000007e7e7e00, // 0x16
	0x183c7e187e3c18ff, // 0x17
	0x183c7e1818181800, // 0x18
	0x181818187e3c1800, // 0x19
	0x00180cfe0c180000, // 0x1a
	0x003060fe60300000, // 0x1b
	0x0000c0c0c0fe0000, // 0x1c
	0x002466ff66240000, // 0x1d
	0x00183c7effff0000, // 0x1e
	0x00ffff7e3c180000, // 0x1f
	0x0000000000000000, // 0x20 space
	0x3078783030003000, // 0x21 !
	0x6c6c6c0000000000, // 0x22 "
	0x6c6cfe6cfe6c6c00, // 0x23 #
	0x307cc0780cf83000, // 0x24 $
	0x00c6cc183066c600, // 0x25 %
	0x386c3876dccc7600, // 0x26 &
	0x6060c00000000000, // 0x27 '
	0x1830606060301800, // 0x28 (
	0x6030181818306000, // 0x29 )
	0x00663cff3c660000, // 0x2a *
	0x003030fc30300000, // 0x2b +
	0x0000000000303060, // 0x2c ,
	0x000000fc00000000, // 0x2d -
	0x0000000000303000, // 0x2e .
	0x060c183060c08000, // 0x2f /
	0x7cc6c6c6c6c67c00, // 0x30 0
	0x307030303030fc00, // 0x31 1
	0x78cc0c3860ccfc00, // 0x32 2
	0x78cc0c380ccc7800, // 0x33 3
	0x1c3c6cccfe0c1e00, // 0x34 4
	0xfcc0f80c0ccc7800, // 0x35 5
	0x3860c0f8cccc7800, // 0x36 6
	0xfccc0c1830303000, // 0x37 7
	0x78cccc78cccc7800, // 0x38 8
	0x78cccc7c0c187000, // 0x39 9
	0x0030300000303000, // 0x3a :
	0x0030300000303060, // 0x3b ;
	0x183060c060301800, // 0x3c <
	0x0000fc0000fc0000, // 0x3d =
	0x6030180c18306000, // 0x3e >
	0x78cc0c1830003000, // 0x3f ?
	0x7cc6dededec07800, // 0x40 @
	0x386cc6c6fec6c600, // 0x41 A
	0xfcc6c6fcc6c6fc00, // 0x42 B
	0x7cc6c6c0c0c67c00, // 0x43 C
	0xf8ccc6c6c6ccf800, // 0x44 D
	0xfec0c0fcc0c0fe00, // 0x45 E
	0xfec0c0fcc0c0c000, // 0x46 F
	0x7cc6c0cec6c67e00, // 0x47 G
	0xc6c6c6fec6c6c600, // 0x48 H
	0x7830303030307800, // 0x49 I
	0x1e060606c6c67c00, // 0x4a J
	0xc6ccd8f0d8ccc600, // 0x4b K
	0xc0c0c0c0c0c0fe00, // 0x4c L
	0xc6eefed6c6c6c600, // 0x4d M
	0xc6e6f6decec6c600, // 0x4e N
	0x7cc6c6c6c6c67c00, // 0x4f O
	0xfcc6c6fcc0c0c000, // 0x50 P
	0x7cc6c6c6c6c67c06, // 0x51 Q
	0xfcc6c6fcc6c6c600, // 0x52 R
	0x78cc603018cc7800, // 0x53 S
	0xfc30303030303000, // 0x54 T
	0xc6c6c6c6c6c67c00, // 0x55 U
	0xc6c6c6c6c66c3800, // 0x56 V
	0xc6c6c6d6feeec600, // 0x57 W
	0xc6c66c386cc6c600, // 0x58 X
	0xc3c3663c18181800, // 0x59 Y
	0xfe0c183060c0fe00, // 0x5a Z
	0x3c30303030303c00, // 0x5b [
	0xc06030180c060300, // 0x5c \
	0x3c0c0c0c0c0c3c00, // 0x5d ]
	0x00386cc600000000, // 0x5e ^
	0x00000000000000ff, // 0x5f _
	0x3030180000000000, // 0x60 `
	0x00007c067ec67e00, // 0x61 a
	0xc0c0fcc6c6e6dc00, // 0x62 b
	0x00007cc6c0c07e00, // 0x63 c
	0x06067ec6c6ce7600, // 0x64 d
	0x00007cc6fec07e00, // 0x65 e
	0x1e307c3030303000, // 0x66 f
	0x00007ec6ce76067c, // 0x67 g
	0xc0c0fcc6c6c6c600, // 0x68 h
	0x1800381818183c00, // 0x69 i
	0x18003818181818f0, // 0x6a j
	0xc0c0ccd8f0d8cc00, // 0x6b k
	0x3818181818183c00, // 0x6c l
	0x0000ccfed6c6c600, // 0x6d m
	0x0000fcc6c6c6c600, // 0x6e n
	0x00007cc6c6c67c00, // 0x6f o
	0x0000fcc6c6e6dcc0, // 0x70 p
	0x00007ec6c6ce7606, // 0x71 q
	0x00006e7060606000, // 0x72 r
	0x00007cc07c06fc00, // 0x73 s
	0x30307c3030301c00, // 0x74 t
	0x0000c6c6c6c67e00, // 0x75 u
	0x0000c6c6c66c3800, // 0x76 v
	0x0000c6c6d6fe6c00, // 0x77 w
	0x0000c66c386cc600, // 0x78 x
	0x0000c6c6ce76067c, // 0x79 y
	0x0000fc183060fc00, // 0x7a z
	0x1c3030e030301c00, // 0x7b {
	0x1818180018181800, // 0x7c |
	0xe030301c3030e000, // 0x7d }
	0x76dc000000000000, // 0x7e ~
	0x0010386cc6c6fe00, // 0x7f
	0x3c66c0c0663c1870, // 0x80
	0x00cc00cccccccc76, // 0x81
	0x0c18007cc6fec07c, // 0x82
	0x386c00780c7ccc76, // 0x83
	0x00cc00780c7ccc76, // 0x84
	0x603000780c7ccc76, // 0x85
	0x386c38780c7ccc76, // 0x86
	0x007cc6c0c67c1870, // 0x87
	0x386c007cc6fec07c, // 0x88
	0x00c6007cc6fec07c, // 0x89
	0x3018007cc6fec07c, // 0x8a
	0x006600381818183c, // 0x8b
	0x386c00381818183c, // 0x8c
	0x301800381818183c, // 0x8d
	0xc610386cc6fec6c6, // 0x8e
	0x386c387cc6fec6c6, // 0x8f
	0x0c18fec0f8c0c0fe, // 0x90
	0x000000ec367ed86e, // 0x91
	0x003e6cccfeccccce, // 0x92
	0x386c007cc6c6c67c, // 0x93
	0x00c6007cc6c6c67c, // 0x94
	0x3018007cc6c6c67c, // 0x95
	0x78cc00cccccccc76, // 0x96
	0x603000cccccccc76, // 0x97
	0x00c600c6c67e06fc, // 0x98
	0xc600386cc6c66c38, // 0x99
	0xc600c6c6c6c6c67c, // 0x9a
	0x00027cced6e67c80, // 0x9b
	0x386c64f0606066fc, // 0x9c
	0x003a6cced6e66cb8, // 0x9d
	0x0000c66c386cc600, // 0x9e
	0x0e1b183c1818d870, // 0x9f
	0x183000780c7ccc76, // 0xa0
	0x0c1800381818183c, // 0xa1
	0x0c18007cc6c6c67c, // 0xa2
	0x183000cccccccc76, // 0xa3
	0x76dc00dc66666666, // 0xa4
	0x76dc00e6f6decec6, // 0xa5
	0x003c6c6c36007e00, // 0xa6
	0x00386c6c38007c00, // 0xa7
	0x003000303060c67c, // 0xa8
	0x7c82b2aab2aa827c, // 0xa9
	0x000000fe06060000, // 0xaa
	0x63e66c7e3366cc0f, // 0xab
	0x63e66c7a366adf06, // 0xac
	0x00180018183c3c18, // 0xad
	0x0000003366cc6633, // 0xae
	0x000000cc663366cc, // 0xaf
	0x2288228822882288, // 0xb0
	0x55aa55aa55aa55aa, // 0xb1
	0x77dd77dd77dd77dd, // 0xb2
	0x1818181818181818, // 0xb3
	0x18181818f8181818, // 0xb4
	0x0c18386cc6fec6c6, // 0xb5
	0x7cc6386cc6fec6c6, // 0xb6
	0x6030386cc6fec6c6, // 0xb7
	0x7c829aa2a29a827c, // 0xb8
	0x3636f606f6363636, // 0xb9
	0x3636363636363636, // 0xba
	0x0000fe06f6363636, // 0xbb
	0x3636f606fe000000, // 0xbc
	0x18187ec0c07e1818, // 0xbd
	0x66663c7e187e1818, // 0xbe
	0x00000000f8181818, // 0xbf
	0x181818181f000000, // 0xc0
	0x18181818ff000000, // 0xc1
	0x00000000ff181818, // 0xc2
	0x181818181f181818, // 0xc3
	0x00000000ff000000, // 0xc4
	0x18181818ff181818, // 0xc5
	0x76dc00780c7ccc76, // 0xc6
	0x76dc386cc6fec6c6, // 0xc7
	0x363637303f000000, // 0xc8
	0x00003f3037363636, // 0xc9
	0x3636f700ff000000, // 0xca
	0x0000ff00f7363636, // 0xcb
	0x3636373037363636, // 0xcc
	0x0000ff00ff000000, // 0xcd
	0x3636f700f7363636, // 0xce
	0x0000c67cc6c67cc6, // 0xcf
	0x76186c063e66663c, // 0xd0
	0x00f86c66f6666cf8, // 0xd1
	0x386c00fec0f8c0fe, // 0xd2
	0xc600fec0f8c0c0fe, // 0xd3
	0x3018fec0f8c0c0fe, // 0xd4
	0x7cc2f8c0f0c0c27c, // 0xd5
	0x0c183c181818183c, // 0xd6
	0x3c66003c1818183c, // 0xd7
	0x66003c181818183c, // 0xd8
	0x18181818f8000000, // 0xd9
	0x000000001f181818, // 0xda
	0xffffffffffffffff, // 0xdb
	0x00000000ffffffff, // 0xdc
	0x1818180000181818, // 0xdd
	0x30183c181818183c, // 0xde
	0xffffffff00000000, // 0xdf
	0x0c18386cc6c66c38, // 0xe0
	0x0078ccd8ccc6c6cc, // 0xe1
	0x7cc6386cc6c66c38, // 0xe2
	0x6030386cc6c66c38, // 0xe3
	0x76dc007cc6c6c67c, // 0xe4
	0x76dc386cc6c66c38, // 0xe5
	0x0000006666667cc0, // 0xe6
	0xe0607c66667c60f0, // 0xe7
	0x00f0607c667c60f0, // 0xe8
	0x0c18c6c6c6c6c67c, // 0xe9
	0x386c00c6c6c6c67c, // 0xea
	0x3018c6c6c6c6c67c, // 0xeb
	0x0c1800c6c67e06fc, // 0xec
	0x0c1866663c18183c, // 0xed
	0xff00000000000000, // 0xee
	0x0c18000000000000, // 0xef
	0x000000007e000000, // 0xf0
	0x0018187e1818007e, // 0xf1
	0x0000000000ff00ff, // 0xf2
	0xe132e43af62a5f86, // 0xf3
	0x007fdbdb7b1b1b1b, // 0xf4
	0x3e613c66663c867c, // 0xf5
	0x000018007e001800, // 0xf6
	0x0000000000001870, // 0xf7
	0x00386c6c38000000, // 0xf8
	0xc600000000000000, // 0xf9
	0x0000000018000000, // 0xfa
	0x00183818183c0000, // 0xfb
	0x00780c380c780000, // 0xfc
	0x00780c18307c0000, // 0xfd
	0x00003c3c3c3c0000, // 0xfe
	0x0000000000000000, // 0xff
}

// Glyph returns the bitmap for byte c.
func Glyph(c byte) uint64 {
	return Glyphs[c]
}
