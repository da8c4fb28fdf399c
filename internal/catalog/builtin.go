package catalog

// builtin is the joke table shipped with the binary.
var builtin = map[CategoryID][]string{
	General: {
		"Why don't scientists trust atoms? Because they make up everything!",
		"Why did the scarecrow win an award? Because he was outstanding in his field!",
		"What do you call a fake noodle? An impasta!",
		"How does a penguin build its house? Igloos it together!",
		"Why don't eggs tell jokes? They'd crack each other up!",
		"What do you call a can opener that doesn't work? A can't opener!",
		"Why did the bicycle fall over? Because it was two-tired!",
		"What do you call a bear with no teeth? A gummy bear!",
		"Why did the math book look so sad? Because it had too many problems!",
		"What do you call a fish with no eyes? Fsh!",
	},
	Programming: {
		"Why do programmers prefer dark mode? Because light attracts bugs!",
		"Why did the developer go broke? Because he used up all his cache!",
		"How many programmers does it take to change a light bulb? None, that's a hardware problem!",
		"Why do Java developers wear glasses? Because they can't C#!",
		"Why was the JavaScript developer sad? Because he didn't know how to 'null' his feelings!",
		"Why did the programmer quit their job? Because they didn't get arrays!",
		"What do you call a computer that sings? A Dell!",
		"Why did the developer get kicked out of the restaurant? Because he kept using the table as a database!",
		"How do you know if a developer is extroverted? They look at your shoes when talking to you!",
		"Why do programmers always mix up Halloween and Christmas? Because Oct 31 == Dec 25!",
	},
	Dad: {
		"Why don't eggs tell jokes? They'd crack each other up!",
		"What do you call a fake noodle? An impasta!",
		"Why did the scarecrow win an award? Because he was outstanding in his field!",
		"How does a penguin build its house? Igloos it together!",
		"Why don't scientists trust atoms? Because they make up everything!",
		"What do you call a can opener that doesn't work? A can't opener!",
		"Why did the bicycle fall over? Because it was two-tired!",
		"What do you call a bear with no teeth? A gummy bear!",
		"Why did the math book look so sad? Because it had too many problems!",
		"What do you call a fish with no eyes? Fsh!",
	},
	Dank: {
		"Why did the skeleton go to the party alone? Because he had no body to go with!",
		"What do you call a bear with no teeth and no fur? A gummy bear!",
		"Why did the cookie go to the doctor? Because it was feeling crumbly!",
		"What do you call a fake noodle in space? An impasta-la!",
		"Why did the tomato turn red? Because it saw the salad dressing!",
		"What do you call a can opener that doesn't work in space? A can't-opener-naut!",
		"Why did the bicycle fall over in space? Because it was two-tired of floating!",
		"What do you call a bear with no teeth, no fur, and no eyes? A gummy bear that can't see!",
		"Why did the math book look so sad in space? Because it had too many problems with gravity!",
		"What do you call a fish with no eyes in space? A fsh-tronaut!",
	},
	Thala: {
		"My crush replied after 7 years. Thala for a reason, patience level: Dhoni!",
		"I failed 7 subjects in one semester. Thala for a reason, even my marks are loyal!",
		"My mom called me 7 times to eat veggies. Thala for a reason, still skipped!",
		"I kept 7 alarms, still woke up at 11. Thala for a reason, sleep OP!",
		"I have 7 exes. Thala for a reason, heartbreak pro max!",
		"I sent 7 \"Hi\"s, got 0 replies. Thala for a reason, ghosted legend!",
		"My WiFi disconnects every 7 minutes. Thala for a reason, buffering king!",
		"I ate 7 packets of Maggi in one night. Thala for a reason, noodle god!",
		"I got 7% in maths. Thala for a reason, calculator uninstall confirmed!",
		"I've been single for 7 years. Thala for a reason, relationship ban!",
		"My phone battery drops 7% every minute. Thala for a reason, charger ka baap!",
		"I saw 7 missed calls from dad. Thala for a reason, slipper incoming!",
		"I have 7 pending assignments. Thala for a reason, deadline dodger!",
		"I watched 7 seasons of a show in 2 days. Thala for a reason, binge beast!",
		"I got 7 likes on my meme. Thala for a reason, influencer in progress!",
		"I've been friendzoned 7 times. Thala for a reason, bro-zone CEO!",
		"I lost 7 pens in one exam. Thala for a reason, magician level: unlocked!",
		"I have 7 unread WhatsApp groups. Thala for a reason, mute master!",
		"I sneezed 7 times in a row. Thala for a reason, allergy OP!",
		"I got 7 \"Are you coming?\" texts, still didn't go. Thala for a reason, introvert gang!",
		"I've changed 7 career plans this year. Thala for a reason, confusion pro!",
		"I have 7 tabs open, all memes. Thala for a reason, productivity 0!",
		"I got 7 delivery OTPs, still hungry. Thala for a reason, Zomato ka dost!",
		"I've been blocked by 7 people. Thala for a reason, savage mode ON!",
		"I've rewatched Dhoni's 2011 six 7 times today. Thala for a reason, nostalgia max!",
		"I have 7 memes saved for every mood. Thala for a reason, meme library!",
		"I've been typing \"Thala for a reason\" for 7 minutes. Thala for a reason, meta joke!",
		"I have 7 empty water bottles on my desk. Thala for a reason, hydration gone!",
		"I've scrolled 7 hours on reels. Thala for a reason, thumb workout!",
		"I've been rejected 7 times in a row. Thala for a reason, comeback stronger!",
		"Ordered 7 idlis, waiter said \"Thala for a reason.\"",
		"Battery at 7%, phone said \"Respect Thala.\"",
		"Slept at 7 PM, woke up as a Thala.",
		"Got 7 likes on my meme, even God said \"Thala approved.\"",
		"Watched Fast & Furious 7, Vin Diesel whispered \"Thala for a reason.\"",
		"My crush replied in 7 words, I proposed immediately.",
		"Missed 7 calls from mom—feeling like MS Doom.",
		"Room no. 7 in hotel? Destiny.",
		"Asked for 7 fries, they gave me a Thala burger.",
		"7 steps into gym, I felt like Dhoni.",
		"Page 7 of my book had no words—just \"Thala.\"",
		"Blinked 7 times and missed the lecture—Thala for a reason.",
		"Failed 7 subjects but topped in \"Thalanomics.\"",
		"Met 7 dogs on my way—felt blessed by Thala.",
		"Stood in 7th row in concert, singer nodded: \"Thala fan spotted.\"",
		"Got 7 Rs cashback—UPI said \"Thala entered.\"",
		"Birthday on 7th? You're not born, you're summoned.",
		"My crush rejected me 7 times—true Thala pain.",
		"Woke up at 7:07—divine signal.",
		"7th episode of anime hit different—Thala arc unlocked.",
		"Found 7 rupees on road—MSD coin toss vibes.",
		"Typo on roll no. made it 7—prof said \"Thala entry.\"",
		"Tried 7 times to diet—ended in biryani.",
		"Got 7th rank—friends said \"You're not topper, you're Thala.\"",
		"7 seconds into the reel, already felt inspired.",
		"Pressed button 7 times—lift opened with Dhoni inside (in dreams).",
		"My name has 7 letters—parents knew I'd be Thala.",
		"Sent \"Hi\" 7 times—she replied \"Thala vibes.\"",
		"7 backlogs but walked out like a captain.",
		"Threw 7 paper balls in class—teacher gave me captaincy.",
		"My WiFi password is 000007. Thala for a reason.",
		"Ordered 7 biryanis, got extra raita. Thala for a reason.",
		"My phone battery died at 7%. Even technology knows. Thala for a reason.",
		"Got 7 likes on my meme. Algorithm respects the Thala. Thala for a reason.",
		"CSK scored 77 runs in 7 overs. Coincidence? Dhoni coding the script. Thala for a reason.",
		"Teacher asked for 7 reasons to study. I wrote \"Dhoni\" 7 times. Full marks. Thala for a reason.",
		"My Uber fare: ₹77. Driver said, \"Sir, you must be a CSK fan.\" Thala for a reason.",
		"IPL auction: Player sold for 7 crores. Dhoni: \"He's ready.\" Thala for a reason.",
		"7 missed calls from mom. Even she's on brand. Thala for a reason.",
		"My pizza had 7 slices. Dhoni cut it himself. Thala for a reason.",
		"Woke up at 7:07 AM. Dreamt of helicopter shots. Thala for a reason.",
		"My crush replied after 7 days. Loyalty test passed. Thala for a reason.",
		"Watched 7 episodes of a show, still waiting for Dhoni cameo. Thala for a reason.",
		"My OTP: 700007. Even banks know the vibe. Thala for a reason.",
		"7 tabs open, all CSK highlights. Productivity = Thala. Thala for a reason.",
		"My friend's wedding on 7/7. Invited Dhoni as chief guest. Thala for a reason.",
		"7 wickets fell, Dhoni still not worried. Universe aligns. Thala for a reason.",
		"My exam hall seat: Row 7, Seat 7. Destiny is a CSK fan. Thala for a reason.",
		"7 notifications, all \"Thala trending.\" Twitter knows the drill. Thala for a reason.",
		"My dog barked 7 times when Dhoni came on screen. Even pets stan Thala. Thala for a reason.",
		"7th over, 7th ball, 7 runs. Wait, there's no 7th ball? Dhoni creates his own rules. Thala for a reason.",
		"My screen cracked at 7:00 PM. Dhoni's aura too strong. Thala for a reason.",
		"7 memes in drafts, all about Thala. Meme gods approve. Thala for a reason.",
		"Google search history: \"Why 7 is lucky for Dhoni?\" Thala for a reason.",
		"7th question in quiz: \"Who is Thala?\" If you know, you know. Thala for a reason.",
		"7th page of my notebook: Only helicopter doodles. Thala for a reason.",
		"7 seconds left, Dhoni finishes the match. Scripted by destiny. Thala for a reason.",
		"My crush's birthday: 7th July. Manifesting Dhoni-level luck. Thala for a reason.",
		"7 emojis in my status, all lions. CSK fever. Thala for a reason.",
		"Even my calculator shows 7 when I type \"THALA.\" Illuminati confirmed. Thala for a reason.",
	},
}
