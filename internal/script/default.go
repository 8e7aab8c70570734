package script

// Default returns the built-in demo voiceover script. Each clip flows into
// the next with no silence between scenes; the narration drives the video
// pacing. Scene order follows the UI tab order: Login → Workspaces →
// Overview → Packages → pixi.toml → Version History → Publications →
// Collaborators → Jobs → Registries → Admin.
//
// Pronunciation guide:
//
//	Nebi      → "Nebee"
//	pixi.toml → "pixie dot toml"
//	OCI       → "O.C.I."
//	UV        → "U.V."
func Default() Table {
	return Table{
		{
			Filename: "01.wav",
			Text: "Let's take a quick look at Nebee, " +
				"a multi-user environment management platform built for pixie.",
		},
		{
			Filename: "02.wav",
			Text: "Once you log in, you land on the workspaces dashboard. " +
				"This is where you can see all your environments at a glance, " +
				"create new ones, or jump into an existing workspace.",
		},
		{
			Filename: "03.wav",
			Text: "Clicking into a workspace gives you the full picture. " +
				"You can see which packages are installed, " +
				"the platforms it supports, and the current configuration.",
		},
		{
			Filename: "04.wav",
			Text: "Adding a new package is simple. " +
				"Just open the install dialog, type the package name, " +
				"and hit install. Nebee handles the rest in the background.",
		},
		{
			Filename: "05.wav",
			Text: "You can also edit the pixie dot toml configuration " +
				"directly in the browser. " +
				"Great for quick tweaks without opening a terminal.",
		},
		{
			Filename: "06.wav",
			Text: "Every change is automatically versioned. " +
				"Each version stores the full pixie dot toml and lock file, " +
				"so you can always roll back to any previous state.",
		},
		{
			Filename: "07.wav",
			Text: "When you're ready, just hit publish. " +
				"Nebee pushes your environment to an O.C.I. registry " +
				"so your team can pull it from anywhere.",
		},
		{
			Filename: "08.wav",
			Text: "Sharing a workspace is easy. " +
				"Just click share, pick a team member, " +
				"set their permission level, and they're in.",
		},
		{
			Filename: "09.wav",
			Text: "All the heavy lifting happens through background jobs. " +
				"You get full real-time logs for every operation, " +
				"so you always know exactly what's going on.",
		},
		{
			Filename: "10.wav",
			Text: "The registries page gives you a clear view " +
				"of all connected O.C.I. registries " +
				"and everything that's been published to them.",
		},
		{
			Filename: "11.wav",
			Text: "You can also browse existing registries, " +
				"explore what's available, and import any environment with just a few clicks.",
		},
		{
			Filename: "12.wav",
			Text: "Over in the admin panel, " +
				"you get a bird's-eye view of the entire platform.",
		},
		{
			Filename: "13.wav",
			Text: "User management is built right in. " +
				"You can create accounts, assign roles, " +
				"and control exactly who has access to what.",
		},
		{
			Filename: "14.wav",
			Text: "Managing registries is straightforward too. " +
				"Add multiple O.C.I. registries and configure credentials, all from one place.",
		},
		{
			Filename: "15.wav",
			Text: "And finally, everything is tracked in the audit log. " +
				"Every action, every change, fully accounted for.",
		},
		{
			Filename: "16.wav",
			Text: "That's Nebee. Give it a try, and let us know what you think!",
		},
	}
}
