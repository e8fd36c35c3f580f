// Package assets loads textures and sprites declared in a manifest into a
// name-indexed registry for [Ebitengine] games.
//
// # Manifests
//
// A manifest is a JSON or YAML document with two optional arrays. Textures
// are image files; sprites are named rectangles cut from a texture declared
// earlier in the same manifest:
//
//	{
//	  "textures": [
//	    {"name": "pieces", "file": "assets/pieces.png", "transparencyX": 0, "transparencyY": 0}
//	  ],
//	  "sprites": [
//	    {"name": "white_king", "texture": "pieces", "posx": 64, "posy": 0, "sizex": 32, "sizey": 32}
//	  ]
//	}
//
// The pixel at (transparencyX, transparencyY) picks the texture's color key:
// every pixel of that color becomes fully transparent. Integer fields may be
// written as strings holding hex ("0x20"), octal ("040") or decimal text.
//
// # Loading
//
//	reg, err := assets.LoadManifest("assets/pieces.json", assets.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer reg.Close()
//
//	king, err := assets.Get[*assets.Sprite](reg, "white_king")
//
// Lookups fail with [ErrNotFound] for unknown names and [ErrKindMismatch]
// when the name holds the other kind. All load errors wrap one of the
// package's sentinel errors.
//
// A texture file that cannot be decoded does not fail the load. The texture
// is registered with [Texture.IsValid] false and zero size; check it before
// drawing.
//
// # Drawing
//
// Sprites draw through a [Painter]. [ScreenPainter] is an immediate-mode
// painter that lays sprites out on an *ebiten.Image and turns them into
// clickable buttons:
//
//	painter.Begin(screen, pointer)
//	if king.DrawButton(painter, "bt_0_4", 1) {
//		// clicked
//	}
//
// Textures are reference counted. The registry owns one reference to each
// texture and every sprite owns another; the GPU image is released when the
// last one is dropped.
//
// [Ebitengine]: https://ebitengine.org
package assets
