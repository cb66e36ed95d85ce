// Package cli is the command line front-end of the material tools.
//
// Every command opens the project named by [paths] assets_dir, loads the
// scene document given with --scene, runs one tool and writes the document
// back when the tool changed it:
//
//	anima-tools rip --scene Assets/Scenes/street.scene.toml --root Car
//	anima-tools replace --scene street.scene.toml --root Car \
//	    --find Assets/Materials/Glass.amt --replace Assets/Materials/Chrome.amt
//	anima-tools gather --scene street.scene.toml --root Car
//	anima-tools nodes --scene street.scene.toml
//	anima-tools config init
//
// --root also accepts "#<id>" with an id listed by nodes. --watch keeps the
// asset index in sync with files other programs change while a command runs.
package cli
